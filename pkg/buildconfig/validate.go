package buildconfig

import (
	"crypto/ecdsa"
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Issue severities
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Issue is one finding reported by Validate
type Issue struct {
	Network  string `json:"network" yaml:"network"`
	Field    string `json:"field" yaml:"field"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s.%s: %s", i.Severity, i.Network, i.Field, i.Message)
}

// AccountInfo is a signer derived from one credential slot
type AccountInfo struct {
	Index   int            `json:"index" yaml:"index"`
	EnvVar  string         `json:"env" yaml:"env"`
	Address common.Address `json:"address" yaml:"address"`
}

// Validate inspects c without modifying it. Load never calls it; a missing
// variable is only a warning since the framework tolerates unused networks.
func Validate(c *Configuration) []Issue {
	var issues []Issue
	for _, n := range c.Networks {
		issues = append(issues, validateNetwork(n)...)
	}
	return issues
}

// HasErrors reports whether any issue is an error, or any issue at all when strict
func HasErrors(issues []Issue, strict bool) bool {
	for _, i := range issues {
		if strict || i.Severity == SeverityError {
			return true
		}
	}
	return false
}

func validateNetwork(n NetworkProfile) []Issue {
	var issues []Issue
	add := func(field, severity, format string, args ...any) {
		issues = append(issues, Issue{
			Network:  n.Name,
			Field:    field,
			Severity: severity,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	urlVar := ""
	if spec, ok := LookupNetworkSpec(n.Name); ok {
		urlVar = spec.URLEnv
	}
	if n.URL == "" {
		add("url", SeverityWarning, "endpoint is unset (%s)", urlVar)
	} else if err := checkEndpoint(n.URL); err != nil {
		add("url", SeverityError, "%v", err)
	}

	seen := make(map[string]int, len(n.Accounts))
	for i, acct := range n.Accounts {
		field := fmt.Sprintf("accounts[%d]", i)
		if acct == "" {
			add(field, SeverityWarning, "credential is unset (%s)", credentialVar(i))
			continue
		}
		if _, err := ParsePrivateKey(acct); err != nil {
			add(field, SeverityError, "%v", err)
			continue
		}
		normalized := strings.ToLower(strings.TrimPrefix(acct, "0x"))
		if prev, ok := seen[normalized]; ok {
			add(field, SeverityWarning, "duplicates accounts[%d]", prev)
			continue
		}
		seen[normalized] = i
	}
	return issues
}

func checkEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("endpoint is not a valid URL")
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("endpoint scheme %q is not http(s) or ws(s)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint has no host")
	}
	return nil
}

// ParsePrivateKey decodes a hex secp256k1 key with or without 0x prefix.
// Errors never include key material.
func ParsePrivateKey(key string) (*ecdsa.PrivateKey, error) {
	body := strings.TrimPrefix(strings.TrimSpace(key), "0x")
	if len(body) != 64 {
		return nil, fmt.Errorf("credential must be 32 bytes of hex, got %d characters", len(body))
	}
	pk, err := crypto.HexToECDSA(body)
	if err != nil {
		return nil, fmt.Errorf("credential is not a valid secp256k1 key")
	}
	return pk, nil
}

// Accounts derives the signer address of every set credential in n
func Accounts(n NetworkProfile) ([]AccountInfo, error) {
	infos := make([]AccountInfo, 0, len(n.Accounts))
	for i, acct := range n.Accounts {
		if acct == "" {
			continue
		}
		pk, err := ParsePrivateKey(acct)
		if err != nil {
			return nil, fmt.Errorf("%s accounts[%d]: %w", n.Name, i, err)
		}
		infos = append(infos, AccountInfo{
			Index:   i,
			EnvVar:  credentialVar(i),
			Address: crypto.PubkeyToAddress(pk.PublicKey),
		})
	}
	return infos, nil
}
