package checkedcmd

// slot is the destination a Param or Arg binds to the low-level parser. It records whether a token
// was supplied at all, so optional specs can tell absence apart from a zero value.
//
// Conversion failures are structural and returned from Set, except for Char payloads: a malformed
// character form is accepted here and reported as invalid by the validation pass.
type slot[T Scalar, Tag any] struct {
	raw      string
	val      Value[T, Tag]
	present  bool
	deferred error
}

func (s *slot[T, Tag]) String() string {
	if !s.present {
		return ""
	}
	return s.raw
}

func (s *slot[T, Tag]) Set(text string) error {
	v, err := parseScalar[T](text)
	if err != nil && !isChar[T]() {
		return err
	}
	s.raw = text
	s.present = true
	s.deferred = err
	s.val = Value[T, Tag]{v: v}
	return nil
}

// ok reports whether a well-formed value was supplied.
func (s *slot[T, Tag]) ok() bool {
	return s.present && s.deferred == nil
}

// invalid applies check to the supplied value. Absence is invalid only for required specs.
func (s *slot[T, Tag]) invalid(check func(Value[T, Tag]) bool, required bool) bool {
	if !s.present {
		return required
	}
	if s.deferred != nil {
		return true
	}
	return check != nil && !check(s.val)
}
