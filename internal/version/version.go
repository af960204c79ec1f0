package version

var (
	Version   = "development"
	CommitSHA = "unknown"
)
