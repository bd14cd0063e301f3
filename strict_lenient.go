//go:build strfmt_lenient

package strfmt

// DefaultStrictUnbound is the build-time default for Config.StrictUnbound.
const DefaultStrictUnbound = false
