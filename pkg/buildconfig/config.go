package buildconfig

// NetworkProfile is a named deployment target: an RPC endpoint plus the signing keys used against it.
type NetworkProfile struct {
	Name     string   `json:"name" yaml:"name"`
	URL      string   `json:"url" yaml:"url"`
	Accounts []string `json:"accounts" yaml:"accounts"`
}

type OptimizerSetting struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

type CompilerSetting struct {
	Version   string           `json:"version" yaml:"version"`
	Optimizer OptimizerSetting `json:"optimizer" yaml:"optimizer"`
}

type SoliditySetting struct {
	Compilers []CompilerSetting `json:"compilers" yaml:"compilers"`
}

// ReportingSetting configures the gas reporter plugin
type ReportingSetting struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	Currency   string `json:"currency" yaml:"currency"`
	OutputFile string `json:"output_file" yaml:"output_file"`
	NoColors   bool   `json:"no_colors" yaml:"no_colors"`
}

// ColorOutput reports whether the reporter is allowed to emit ANSI colors
func (r ReportingSetting) ColorOutput() bool {
	return !r.NoColors
}

type PathSetting struct {
	Sources   string `json:"sources" yaml:"sources"`
	Tests     string `json:"tests" yaml:"tests"`
	Cache     string `json:"cache" yaml:"cache"`
	Artifacts string `json:"artifacts" yaml:"artifacts"`
}

type TestRunnerSetting struct {
	TimeoutMilliseconds int `json:"timeout_ms" yaml:"timeout_ms"`
}

// Configuration is the fully resolved build configuration.
// It is built once by Load and is not mutated afterwards.
type Configuration struct {
	Networks    []NetworkProfile  `json:"networks" yaml:"networks"`
	Solidity    SoliditySetting   `json:"solidity" yaml:"solidity"`
	GasReporter ReportingSetting  `json:"gas_reporter" yaml:"gas_reporter"`
	Paths       PathSetting       `json:"paths" yaml:"paths"`
	Mocha       TestRunnerSetting `json:"mocha" yaml:"mocha"`
}

// Network returns the profile registered under name
func (c *Configuration) Network(name string) (NetworkProfile, bool) {
	for _, n := range c.Networks {
		if n.Name == name {
			return n, true
		}
	}
	return NetworkProfile{}, false
}

// NetworkNames returns profile names in declaration order
func (c *Configuration) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for _, n := range c.Networks {
		names = append(names, n.Name)
	}
	return names
}

// Clone returns a deep copy that shares no slices with c
func (c *Configuration) Clone() *Configuration {
	out := *c
	out.Networks = make([]NetworkProfile, len(c.Networks))
	for i, n := range c.Networks {
		n.Accounts = append([]string(nil), n.Accounts...)
		out.Networks[i] = n
	}
	out.Solidity.Compilers = append([]CompilerSetting(nil), c.Solidity.Compilers...)
	return &out
}
