package version

// version is overridden at build time with
// -ldflags "-X github.com/cbodonnell/kvartal/pkg/version.version=..."
var version = "0.1.0"

func Get() string {
	return version
}
