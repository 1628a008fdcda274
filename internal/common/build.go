package common

import "runtime/debug"

// GetModuleBuildInfo returns the module version and git commit baked into
// the binary, if the build carried them.
func GetModuleBuildInfo() (string, string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}

	version := info.Main.Version
	var gitCommit string

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			gitCommit = setting.Value
			break
		}
	}

	return version, gitCommit, true
}
