package buildconfig

// Compiler defaults
const (
	// SolidityVersion is the only compiler version the project builds with
	SolidityVersion = "0.8.26"

	// OptimizerRuns is the expected number of executions the optimizer tunes for
	OptimizerRuns = 2000
)

// Gas reporter defaults
const (
	GasReporterCurrency   = "ETH"
	GasReporterOutputFile = "gas-report.txt"
)

// Project layout
const (
	SourcesDir   = "./contracts"
	TestsDir     = "./test"
	CacheDir     = "./cache"
	ArtifactsDir = "./artifacts"
)

// MochaTimeoutMilliseconds bounds a single test case
const MochaTimeoutMilliseconds = 5000

// Network kinds
const (
	KindTestnet = "testnet"
	KindMainnet = "mainnet"
)
