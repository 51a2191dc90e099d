package models

// notAvailable replaces build values the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the linker-injected build metadata reported by the startup
// banner and GET /version.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo builds AppBuildInfo, substituting "N/A" for empty values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
