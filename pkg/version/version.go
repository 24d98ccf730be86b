package version

import "runtime/debug"

// version is overridden at build time with
// -ldflags "-X github.com/vinodismyname/salesreport/pkg/version.version=v1.2.3".
var version = "dev"

// Version returns the ldflags version, else the module version from build
// info, else "dev". A VCS revision, when recorded, is appended.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	return resolve(version, info)
}

func resolve(ldflags string, info *debug.BuildInfo) string {
	v := ldflags
	if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return v + "+" + s.Value[:7]
		}
	}
	return v
}
