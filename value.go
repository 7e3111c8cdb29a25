package checkedcmd

import (
	"strconv"
)

// Char is the single-character primitive. Its text form is parsed with [ParseChar], so c, 'c' and
// "c" all read as c.
type Char rune

// String returns the character itself.
func (c Char) String() string {
	return string(rune(c))
}

// Scalar is the closed set of primitive types a [Value] may wrap.
type Scalar interface {
	bool | string | Char |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Value wraps a primitive of type T under a marker type Tag. Two instantiations with the same T but
// different tags are distinct types, so an input filename cannot be passed where an output filename
// is expected:
//
//	type inputFile struct{}
//	type outputFile struct{}
//	type InputFile = checkedcmd.Value[string, inputFile]
//	type OutputFile = checkedcmd.Value[string, outputFile]
//
// The tag only exists at compile time; equality compares the wrapped value.
type Value[T Scalar, Tag any] struct {
	v T
}

// Wrap returns v tagged with Tag. T is inferred from v:
//
//	in := checkedcmd.Wrap[inputFile]("file.csv")
func Wrap[Tag any, T Scalar](v T) Value[T, Tag] {
	return Value[T, Tag]{v: v}
}

// Get returns the wrapped value.
func (v Value[T, Tag]) Get() T {
	return v.v
}

// Equal reports whether both values wrap the same primitive.
func (v Value[T, Tag]) Equal(other Value[T, Tag]) bool {
	return v.v == other.v
}

// String renders the wrapped value using the primitive's own text form.
func (v Value[T, Tag]) String() string {
	return formatScalar(v.v)
}

// Set parses s using the primitive's own text form. It makes *Value a [flag.Value].
func (v *Value[T, Tag]) Set(s string) error {
	parsed, err := parseScalar[T](s)
	if err != nil {
		return err
	}
	v.v = parsed
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (v Value[T, Tag]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Value[T, Tag]) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func parseScalar[T Scalar](s string) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *bool:
		*p, err = strconv.ParseBool(s)
	case *string:
		*p = s
	case *Char:
		*p, err = ParseChar(s)
	case *int:
		*p, err = parseSigned[int](s, strconv.IntSize)
	case *int8:
		*p, err = parseSigned[int8](s, 8)
	case *int16:
		*p, err = parseSigned[int16](s, 16)
	case *int32:
		*p, err = parseSigned[int32](s, 32)
	case *int64:
		*p, err = parseSigned[int64](s, 64)
	case *uint:
		*p, err = parseUnsigned[uint](s, strconv.IntSize)
	case *uint8:
		*p, err = parseUnsigned[uint8](s, 8)
	case *uint16:
		*p, err = parseUnsigned[uint16](s, 16)
	case *uint32:
		*p, err = parseUnsigned[uint32](s, 32)
	case *uint64:
		*p, err = parseUnsigned[uint64](s, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	}
	return out, err
}

func parseSigned[I int | int8 | int16 | int32 | int64](s string, bits int) (I, error) {
	n, err := strconv.ParseInt(s, 10, bits)
	return I(n), err
}

func parseUnsigned[U uint | uint8 | uint16 | uint32 | uint64](s string, bits int) (U, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	return U(n), err
}

func formatScalar[T Scalar](v T) string {
	switch x := any(v).(type) {
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	case Char:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return ""
}

func isChar[T Scalar]() bool {
	var zero T
	_, ok := any(zero).(Char)
	return ok
}
