// Package check provides common validators for checkedcmd specs.
//
// Every validator works on any value with a Get method, which includes every checkedcmd.Value, and
// has the shape func(V) bool expected by the spec constructors. The value type is always given
// explicitly; the primitive type is inferred from the arguments where there are any.
//
// The following validators are available:
//   - [Any] - accepts every value
//   - [Not], [All] - combine validators
//   - [OneOf] - restricts values to a predefined set
//   - [NotEmpty], [ShorterThan] - bound the length of text
//   - [Matches] - requires text to match a regular expression
//   - [URL] - requires text to parse as a URL with scheme and host
//   - [Positive], [Between] - bound numbers
//
// Example:
//
//	checkedcmd.NewParam("format", "-f", "--format", "output format",
//	    check.OneOf[Format]("json", "yaml", "table"))
//	checkedcmd.NewOptionalParam("rows", "-l", "--LineLimit", "row limit",
//	    check.Between[RowLimit](uint16(1), uint16(65535)))
package check
