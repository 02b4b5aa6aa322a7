package version

// Set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func Full() string {
	return Version + " (commit: " + GitCommit + ", built: " + BuildTime + ")"
}
