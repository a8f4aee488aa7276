package buildconfig

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by DotenvLookup when no path is given
const DefaultEnvFile = ".env"

// LookupFunc resolves one environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load assembles the build configuration from lookup.
// Unset variables leave the corresponding field empty; Load never fails.
func Load(lookup LookupFunc) *Configuration {
	if lookup == nil {
		lookup = MapLookup(nil)
	}
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	// Resolve the shared credentials once so every profile sees the same values
	accounts := make([]string, len(credentialEnvs))
	for i, key := range credentialEnvs {
		accounts[i] = get(key)
	}

	networks := make([]NetworkProfile, 0, len(networkSpecs))
	for _, spec := range networkSpecs {
		networks = append(networks, NetworkProfile{
			Name:     spec.Name,
			URL:      get(spec.URLEnv),
			Accounts: append([]string(nil), accounts...),
		})
	}

	return &Configuration{
		Networks: networks,
		Solidity: SoliditySetting{
			Compilers: []CompilerSetting{{
				Version: SolidityVersion,
				Optimizer: OptimizerSetting{
					Enabled: true,
					Runs:    OptimizerRuns,
				},
			}},
		},
		GasReporter: ReportingSetting{
			Enabled:    true,
			Currency:   GasReporterCurrency,
			OutputFile: GasReporterOutputFile,
			NoColors:   true,
		},
		Paths: PathSetting{
			Sources:   SourcesDir,
			Tests:     TestsDir,
			Cache:     CacheDir,
			Artifacts: ArtifactsDir,
		},
		Mocha: TestRunnerSetting{
			TimeoutMilliseconds: MochaTimeoutMilliseconds,
		},
	}
}

// LoadFromEnvironment is Load over the process environment
func LoadFromEnvironment() *Configuration {
	return Load(os.LookupEnv)
}

// MapLookup serves variables from a fixed map
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// DotenvLookup layers a .env file under the process environment.
// Variables already present in the process win; the file only fills gaps.
// A missing file is not an error.
func DotenvLookup(path string) (LookupFunc, error) {
	if path == "" {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.LookupEnv, nil
	}

	fileEnv, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return Layered(os.LookupEnv, MapLookup(fileEnv)), nil
}

// Layered returns the first hit across lookups, in order
func Layered(lookups ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if v, ok := l(key); ok {
				return v, true
			}
		}
		return "", false
	}
}
