// Package gnkey ranks identification-key characters for plant species.
package gnkey

var (
	// Version of GNkey, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
