package version

// Version is the current engine version.
const Version = "0.3.0"

// BuildVersion returns the full version line for CLI display.
func BuildVersion() string {
	return "rihla version " + Version
}

// String returns just the version number for API responses.
func String() string {
	return Version
}
