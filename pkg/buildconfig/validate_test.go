package buildconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known development keys; never fund these on a live chain.
const (
	devKey0     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress0 = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	devKey1     = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	devAddress1 = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func issuesFor(issues []Issue, network string) []Issue {
	var out []Issue
	for _, i := range issues {
		if i.Network == network {
			out = append(out, i)
		}
	}
	return out
}

func TestValidate_EmptyEnvironmentOnlyWarns(t *testing.T) {
	issues := Validate(Load(nil))

	// one url warning plus four credential warnings per network
	require.Len(t, issues, len(networkSpecs)*5)
	assert.False(t, HasErrors(issues, false))
	assert.True(t, HasErrors(issues, true))

	for _, i := range issues {
		assert.Equal(t, SeverityWarning, i.Severity)
	}
	assert.Contains(t, issuesFor(issues, "mantle")[0].Message, "Mantle_Mainnet_Key")
}

func TestValidate_CleanConfiguration(t *testing.T) {
	env := map[string]string{
		"PRIVATE1": devKey0,
		"PRIVATE2": devKey1,
		"PRIVATE3": "0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
		"PRIVATE4": "0x7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6",
	}
	for _, spec := range networkSpecs {
		env[spec.URLEnv] = "https://rpc.example.org/v2/key"
	}

	issues := Validate(Load(MapLookup(env)))
	assert.Empty(t, issues)
	assert.False(t, HasErrors(issues, true))
}

func TestValidate_BadValues(t *testing.T) {
	cfg := Load(MapLookup(map[string]string{
		"ARB_Mainnet_Key": "ftp://rpc.example.org",
		"BASE_Mainnet_Key": "https://",
		"PRIVATE1":         "not-a-key",
		"PRIVATE2":         devKey0,
		"PRIVATE3":         devKey0[2:],
	}))

	issues := Validate(cfg)
	assert.True(t, HasErrors(issues, false))

	arb := issuesFor(issues, "arb")
	require.NotEmpty(t, arb)
	assert.Equal(t, "url", arb[0].Field)
	assert.Equal(t, SeverityError, arb[0].Severity)
	assert.Contains(t, arb[0].Message, "ftp")

	base := issuesFor(issues, "base")
	require.NotEmpty(t, base)
	assert.Equal(t, "endpoint has no host", base[0].Message)

	fields := map[string]Issue{}
	for _, i := range arb {
		fields[i.Field] = i
	}
	assert.Equal(t, SeverityError, fields["accounts[0]"].Severity)
	assert.NotContains(t, fields["accounts[0]"].Message, "not-a-key")
	_, flagged := fields["accounts[1]"]
	assert.False(t, flagged)
	assert.Equal(t, SeverityWarning, fields["accounts[2]"].Severity)
	assert.Contains(t, fields["accounts[2]"].Message, "duplicates accounts[1]")
	assert.Equal(t, SeverityWarning, fields["accounts[3]"].Severity)
}

func TestAccounts_DerivesAddresses(t *testing.T) {
	cfg := Load(MapLookup(map[string]string{
		"PRIVATE1": devKey0,
		"PRIVATE3": devKey1,
	}))
	n, ok := cfg.Network("okx")
	require.True(t, ok)

	accounts, err := Accounts(n)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, 0, accounts[0].Index)
	assert.Equal(t, "PRIVATE1", accounts[0].EnvVar)
	assert.Equal(t, devAddress0, accounts[0].Address.Hex())

	assert.Equal(t, 2, accounts[1].Index)
	assert.Equal(t, "PRIVATE3", accounts[1].EnvVar)
	assert.Equal(t, devAddress1, accounts[1].Address.Hex())
}

func TestAccounts_InvalidKey(t *testing.T) {
	n := NetworkProfile{Name: "arb", Accounts: []string{"0x1234"}}
	_, err := Accounts(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arb accounts[0]")
}

func TestRedaction(t *testing.T) {
	cfg := Load(MapLookup(map[string]string{
		"ARB_Sepolia_Key": "https://arb-sepolia.g.alchemy.com/v2/secret",
		"OKX_Testnet_Key": "https://okx.example.org",
		"PRIVATE1":        devKey0,
		"PRIVATE2":        "short",
	}))
	red := cfg.Redacted()

	arb, _ := red.Network("arb_sepolia")
	assert.Equal(t, "https://arb-sepolia.g.alchemy.com/****", arb.URL)
	assert.Equal(t, "0xac09…ff80", arb.Accounts[0])
	assert.Equal(t, "****", arb.Accounts[1])
	assert.Equal(t, "", arb.Accounts[2])

	okx, _ := red.Network("okx_testnet")
	assert.Equal(t, "https://okx.example.org", okx.URL)

	// the source configuration is untouched
	orig, _ := cfg.Network("arb_sepolia")
	assert.Equal(t, devKey0, orig.Accounts[0])
	assert.Equal(t, "****", RedactURL("not a url"))
}

func TestRedactKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "prefixed", key: devKey0, want: "0xac09…ff80"},
		{name: "bare", key: devKey1, want: "0x59c6…690d"},
		{name: "empty", key: "", want: ""},
		{name: "mnemonic", key: "test test test test test test test test test test test junk", want: "****"},
		{name: "multibyte", key: "ключ-ключ-ключ-ключ", want: "****"},
		{name: "not hex", key: "0x" + strings.Repeat("zz", 32), want: "****"},
		{name: "too long", key: devKey0 + "00", want: "****"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactKey(tt.key))
		})
	}
}
