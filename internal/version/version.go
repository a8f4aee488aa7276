package version

// Set at build time with -ldflags "-X github.com/mellis0303/hhconfig/internal/version.version=..."
var (
	version = "Development"
	commit  = "unknown"
)

func GetVersion() string {
	return version
}

func GetCommit() string {
	return commit
}
