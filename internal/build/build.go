// Package build holds build-time information.
package build

// Version is the weft version string.
// It defaults to "dev" and is overwritten by linker flags on release builds.
var Version = "dev"
