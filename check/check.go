package check

import (
	"net/url"
	"regexp"
	"slices"
	"unicode/utf8"
)

// Getter is implemented by every checkedcmd.Value.
type Getter[T any] interface {
	Get() T
}

// Number is the set of numeric primitives.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Any accepts every value.
func Any[V any](V) bool {
	return true
}

// Not inverts fn.
func Not[V any](fn func(V) bool) func(V) bool {
	return func(v V) bool {
		return !fn(v)
	}
}

// All accepts a value only if every fn accepts it. With no validators it accepts everything.
func All[V any](fns ...func(V) bool) func(V) bool {
	return func(v V) bool {
		for _, fn := range fns {
			if !fn(v) {
				return false
			}
		}
		return true
	}
}

// OneOf accepts values equal to one of allowed.
func OneOf[V Getter[T], T comparable](allowed ...T) func(V) bool {
	return func(v V) bool {
		return slices.Contains(allowed, v.Get())
	}
}

// NotEmpty accepts non-empty text.
func NotEmpty[V Getter[string]](v V) bool {
	return v.Get() != ""
}

// ShorterThan accepts text with fewer than n characters.
func ShorterThan[V Getter[string]](n int) func(V) bool {
	return func(v V) bool {
		return utf8.RuneCountInString(v.Get()) < n
	}
}

// Matches accepts text that matches re.
func Matches[V Getter[string]](re *regexp.Regexp) func(V) bool {
	return func(v V) bool {
		return re.MatchString(v.Get())
	}
}

// URL accepts text that parses as a URL with both a scheme and a host.
func URL[V Getter[string]](v V) bool {
	u, err := url.Parse(v.Get())
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Positive accepts numbers greater than zero.
func Positive[V Getter[N], N Number](v V) bool {
	return v.Get() > 0
}

// Between accepts numbers in the closed range [lo, hi].
func Between[V Getter[N], N Number](lo, hi N) func(V) bool {
	return func(v V) bool {
		n := v.Get()
		return n >= lo && n <= hi
	}
}
