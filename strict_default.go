//go:build !strfmt_lenient

package strfmt

// DefaultStrictUnbound is the build-time default for Config.StrictUnbound. Build
// with the strfmt_lenient tag to render unbound placeholders as empty text.
const DefaultStrictUnbound = true
