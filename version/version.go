package version

const (
	major = "0"
	minor = "9"
	patch = "0"

	// Version is the full string version of this Logward Go client.
	Version = major + "." + minor + "." + patch
)
