package buildconfig

import "fmt"

// NetworkSpec binds a profile name to the environment variable holding its RPC endpoint
type NetworkSpec struct {
	Name   string
	URLEnv string
	Kind   string
}

// Variable names are case sensitive and kept exactly as deployed .env files spell them.
var networkSpecs = []NetworkSpec{
	{Name: "mantle_testnet", URLEnv: "Mantle_Sepolia_Key", Kind: KindTestnet},
	{Name: "arb_sepolia", URLEnv: "ARB_Sepolia_Key", Kind: KindTestnet},
	{Name: "arc_testnet", URLEnv: "ARC_Testnet_Key", Kind: KindTestnet},
	{Name: "okx_testnet", URLEnv: "OKX_Testnet_Key", Kind: KindTestnet},
	{Name: "base_sepolia", URLEnv: "BASE_Sepolia_Key", Kind: KindTestnet},
	{Name: "mantle", URLEnv: "Mantle_Mainnet_Key", Kind: KindMainnet},
	{Name: "arb", URLEnv: "ARB_Mainnet_Key", Kind: KindMainnet},
	{Name: "okx", URLEnv: "OKX_Mainnet_Key", Kind: KindMainnet},
	{Name: "base", URLEnv: "BASE_Mainnet_Key", Kind: KindMainnet},
}

// credentialEnvs are shared by every network; order defines account index
var credentialEnvs = []string{"PRIVATE1", "PRIVATE2", "PRIVATE3", "PRIVATE4"}

// NetworkSpecs returns a copy of the network table
func NetworkSpecs() []NetworkSpec {
	return append([]NetworkSpec(nil), networkSpecs...)
}

// LookupNetworkSpec finds the table entry for a profile name
func LookupNetworkSpec(name string) (NetworkSpec, bool) {
	for _, s := range networkSpecs {
		if s.Name == name {
			return s, true
		}
	}
	return NetworkSpec{}, false
}

// CredentialVariables returns the shared signing key variable names in account order
func CredentialVariables() []string {
	return append([]string(nil), credentialEnvs...)
}

// EnvironmentVariables returns every variable name Load reads
func EnvironmentVariables() []string {
	vars := make([]string, 0, len(networkSpecs)+len(credentialEnvs))
	for _, s := range networkSpecs {
		vars = append(vars, s.URLEnv)
	}
	return append(vars, credentialEnvs...)
}

// credentialVar names the variable behind account slot i
func credentialVar(i int) string {
	if i < 0 || i >= len(credentialEnvs) {
		return fmt.Sprintf("slot %d", i)
	}
	return credentialEnvs[i]
}
