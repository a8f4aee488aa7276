package buildconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// Supported export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FrameworkDocument mirrors the object the contract build framework reads from its config file
type FrameworkDocument struct {
	Networks    map[string]FrameworkNetwork `json:"networks"`
	Solidity    FrameworkSolidity           `json:"solidity"`
	GasReporter FrameworkGasReporter        `json:"gasReporter"`
	Paths       FrameworkPaths              `json:"paths"`
	Mocha       FrameworkMocha              `json:"mocha"`
}

// FrameworkNetwork leaves URL nil when an unset endpoint is omitted
type FrameworkNetwork struct {
	URL      *string  `json:"url,omitempty"`
	Accounts []string `json:"accounts"`
}

type FrameworkSolidity struct {
	Compilers []FrameworkCompiler `json:"compilers"`
}

type FrameworkCompiler struct {
	Version  string                    `json:"version"`
	Settings FrameworkCompilerSettings `json:"settings"`
}

type FrameworkCompilerSettings struct {
	Optimizer OptimizerSetting `json:"optimizer"`
}

type FrameworkGasReporter struct {
	Enabled    bool   `json:"enabled"`
	Currency   string `json:"currency"`
	OutputFile string `json:"outputFile"`
	NoColors   bool   `json:"noColors"`
}

type FrameworkPaths struct {
	Sources   string `json:"sources"`
	Tests     string `json:"tests"`
	Cache     string `json:"cache"`
	Artifacts string `json:"artifacts"`
}

type FrameworkMocha struct {
	Timeout int `json:"timeout"`
}

// ExportOptions controls how unset values are written
type ExportOptions struct {
	// OmitUnset drops empty credentials and empty URLs, the way the framework
	// skips undefined values. Otherwise both are written as "".
	OmitUnset bool
}

// FrameworkDocument converts c into the framework's config shape
func (c *Configuration) FrameworkDocument(opts ExportOptions) *FrameworkDocument {
	doc := &FrameworkDocument{
		Networks: make(map[string]FrameworkNetwork, len(c.Networks)),
		GasReporter: FrameworkGasReporter{
			Enabled:    c.GasReporter.Enabled,
			Currency:   c.GasReporter.Currency,
			OutputFile: c.GasReporter.OutputFile,
			NoColors:   c.GasReporter.NoColors,
		},
		Paths: FrameworkPaths(c.Paths),
		Mocha: FrameworkMocha{Timeout: c.Mocha.TimeoutMilliseconds},
	}

	for _, n := range c.Networks {
		accounts := make([]string, 0, len(n.Accounts))
		for _, a := range n.Accounts {
			if opts.OmitUnset && a == "" {
				continue
			}
			accounts = append(accounts, a)
		}
		fn := FrameworkNetwork{Accounts: accounts}
		if n.URL != "" || !opts.OmitUnset {
			url := n.URL
			fn.URL = &url
		}
		doc.Networks[n.Name] = fn
	}

	for _, comp := range c.Solidity.Compilers {
		doc.Solidity.Compilers = append(doc.Solidity.Compilers, FrameworkCompiler{
			Version:  comp.Version,
			Settings: FrameworkCompilerSettings{Optimizer: comp.Optimizer},
		})
	}
	return doc
}

// Export writes doc to w in the given format
func Export(w io.Writer, doc *FrameworkDocument, format string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "", FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML, "yml":
		data, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported export format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
	if err != nil {
		return fmt.Errorf("encode framework document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write framework document: %w", err)
	}
	return nil
}
