package argparse

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textValue struct {
	s string
}

func (v *textValue) String() string     { return v.s }
func (v *textValue) Set(s string) error { v.s = s; return nil }

type intValue struct {
	n int
}

func (v *intValue) String() string { return strconv.Itoa(v.n) }
func (v *intValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	v.n = n
	return nil
}

// testParser builds
//
//	conv [-H] [-l <rows>] -T <name> <input> [<extra>]
type testParser struct {
	p      *Parser
	header bool
	limit  *intValue
	table  *textValue
	input  *textValue
	extra  *textValue
}

func newTestParser(t *testing.T) *testParser {
	t.Helper()
	tp := &testParser{
		p:     New("conv"),
		limit: &intValue{},
		table: &textValue{},
		input: &textValue{},
		extra: &textValue{},
	}
	require.NoError(t, tp.p.Switch(&tp.header, []string{"-H", "--HasHeadLine"}, "first row is a headline"))
	require.NoError(t, tp.p.Option(tp.limit, "rows", []string{"-l", "--LineLimit"}, "row limit", false))
	require.NoError(t, tp.p.Option(tp.table, "name", []string{"-T", "--TableName"}, "table name", true))
	require.NoError(t, tp.p.Positional(tp.input, "input", "file to read", true))
	require.NoError(t, tp.p.Positional(tp.extra, "extra", "", false))
	return tp
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("short names", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-H", "-l", "2", "-T", "sheet", "in.csv"})
		require.NoError(t, err)
		assert.True(t, tp.header)
		assert.Equal(t, 2, tp.limit.n)
		assert.Equal(t, "sheet", tp.table.s)
		assert.Equal(t, "in.csv", tp.input.s)
		assert.Equal(t, "", tp.extra.s)
	})
	t.Run("long names and equals syntax", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"--HasHeadLine", "--LineLimit=7", "--TableName", "sheet", "in.csv", "more"})
		require.NoError(t, err)
		assert.True(t, tp.header)
		assert.Equal(t, 7, tp.limit.n)
		assert.Equal(t, "sheet", tp.table.s)
		assert.Equal(t, "more", tp.extra.s)
	})
	t.Run("flags interleaved with positionals", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"in.csv", "-T", "sheet", "more", "-H"})
		require.NoError(t, err)
		assert.True(t, tp.header)
		assert.Equal(t, "in.csv", tp.input.s)
		assert.Equal(t, "more", tp.extra.s)
	})
	t.Run("switch absent", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		require.NoError(t, tp.p.Parse([]string{"-T", "sheet", "in.csv"}))
		assert.False(t, tp.header)
		assert.Equal(t, 0, tp.limit.n)
	})
	t.Run("required option missing", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-H", "in.csv"})
		require.ErrorIs(t, err, ErrMissing)
		assert.Contains(t, err.Error(), "-T, --TableName")
	})
	t.Run("required positional missing", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "sheet"})
		require.ErrorIs(t, err, ErrMissing)
		assert.Contains(t, err.Error(), "<input>")
	})
	t.Run("surplus positional", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "sheet", "a", "b", "c"})
		require.ErrorIs(t, err, ErrUnexpectedArg)
		assert.Contains(t, err.Error(), `"c"`)
	})
	t.Run("option conversion failure", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "sheet", "-l", "many", "in.csv"})
		require.ErrorIs(t, err, ErrInvalidValue)
	})
	t.Run("option without value", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"in.csv", "-T"})
		require.ErrorIs(t, err, ErrInvalidValue)
	})
	t.Run("positional conversion failure", func(t *testing.T) {
		t.Parallel()
		p := New("count")
		n := &intValue{}
		require.NoError(t, p.Positional(n, "n", "", true))

		err := p.Parse([]string{"ten"})
		require.ErrorIs(t, err, ErrInvalidValue)
		assert.Contains(t, err.Error(), "<n>")
	})
	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "sheet", "--verbose", "in.csv"})
		require.ErrorIs(t, err, ErrUnknownFlag)
		assert.Contains(t, err.Error(), `"--verbose"`)
		assert.NotContains(t, err.Error(), "Did you mean")
	})
	t.Run("unknown flag with suggestion", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"--TableNam", "sheet", "in.csv"})
		require.ErrorIs(t, err, ErrUnknownFlag)
		assert.Contains(t, err.Error(), "Did you mean one of these?")
		assert.Contains(t, err.Error(), "--TableName")
	})
	t.Run("option value that looks like a flag", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "-sheet", "in.csv"})
		require.NoError(t, err)
		assert.Equal(t, "-sheet", tp.table.s)
	})
	t.Run("terminator makes flags positional", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "sheet", "in.csv", "--", "-H"})
		require.NoError(t, err)
		assert.False(t, tp.header)
		assert.Equal(t, "-H", tp.extra.s)
	})
	t.Run("terminator after positionals", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "sheet", "in.csv", "--", "out"})
		require.NoError(t, err)
		assert.Equal(t, "in.csv", tp.input.s)
		assert.Equal(t, "out", tp.extra.s)
	})
	t.Run("terminator before positionals", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "sheet", "--", "-in.csv", "-H"})
		require.NoError(t, err)
		assert.False(t, tp.header)
		assert.Equal(t, "-in.csv", tp.input.s)
		assert.Equal(t, "-H", tp.extra.s)
	})
	t.Run("terminator as option value", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "--", "in.csv", "--", "-l"})
		require.NoError(t, err)
		assert.Equal(t, "--", tp.table.s)
		assert.Equal(t, "in.csv", tp.input.s)
		assert.Equal(t, "-l", tp.extra.s)
	})
	t.Run("only the first terminator is consumed", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "sheet", "--", "in.csv", "--"})
		require.NoError(t, err)
		assert.Equal(t, "in.csv", tp.input.s)
		assert.Equal(t, "--", tp.extra.s)
	})
	t.Run("surplus after terminator", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		err := tp.p.Parse([]string{"-T", "sheet", "a", "--", "b", "c"})
		require.ErrorIs(t, err, ErrUnexpectedArg)
		assert.Contains(t, err.Error(), `"c"`)
	})
	t.Run("parser is single use", func(t *testing.T) {
		t.Parallel()
		tp := newTestParser(t)

		require.NoError(t, tp.p.Parse([]string{"-T", "sheet", "in.csv"}))
		require.Error(t, tp.p.Parse([]string{"-T", "sheet", "in.csv"}))
	})
}

func TestRegistration(t *testing.T) {
	t.Parallel()

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		p := New("dup")
		var a, b bool
		require.NoError(t, p.Switch(&a, []string{"-v", "--verbose"}, ""))
		err := p.Switch(&b, []string{"--verbose"}, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})
	t.Run("duplicate name within one item", func(t *testing.T) {
		t.Parallel()
		p := New("dup")
		err := p.Option(&textValue{}, "", []string{"-x", "x"}, "", false)
		require.Error(t, err)
	})
	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()
		p := New("bad")
		var a bool
		err := p.Switch(&a, []string{"--1st"}, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must start with a letter")
	})
	t.Run("no names", func(t *testing.T) {
		t.Parallel()
		p := New("bad")
		err := p.Option(&textValue{}, "", []string{"", ""}, "", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})
	t.Run("nil destinations", func(t *testing.T) {
		t.Parallel()
		p := New("bad")
		require.Error(t, p.Switch(nil, []string{"-x"}, ""))
		require.Error(t, p.Option(nil, "", []string{"-y"}, "", false))
		require.Error(t, p.Positional(nil, "", "", false))
	})
	t.Run("empty names are skipped", func(t *testing.T) {
		t.Parallel()
		p := New("ok")
		var on bool
		require.NoError(t, p.Switch(&on, []string{"", "--on"}, ""))
		require.NoError(t, p.Parse([]string{"--on"}))
		assert.True(t, on)
	})
}

func TestHasFlag(t *testing.T) {
	t.Parallel()

	tp := newTestParser(t)
	var help bool
	require.NoError(t, tp.p.Switch(&help, []string{"-h", "--help"}, ""))
	p := tp.p

	assert.True(t, p.HasFlag([]string{"file", "-h"}, "h", "help"))
	assert.True(t, p.HasFlag([]string{"--help"}, "h", "help"))
	assert.True(t, p.HasFlag([]string{"--help=true"}, "h", "help"))
	assert.True(t, p.HasFlag([]string{"-T", "sheet", "-h"}, "h", "help"))
	assert.False(t, p.HasFlag([]string{"file", "--", "-h"}, "h", "help"))
	assert.False(t, p.HasFlag([]string{"-", "help"}, "h", "help"))
	assert.False(t, p.HasFlag([]string{"-T", "-h"}, "h", "help"))
	assert.False(t, p.HasFlag([]string{"--TableName", "--help", "in.csv"}, "h", "help"))
	assert.False(t, p.HasFlag(nil, "h"))
}

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	known := []string{"TableName", "LineLimit", "HasHeadLine", "h", "T"}
	assert.Equal(t, []string{"TableName"}, findSimilar("tablename", known, 3))
	assert.Equal(t, []string{"LineLimit"}, findSimilar("Line", known, 3))
	assert.Equal(t, []string{"T"}, findSimilar("t", known, 3))
	assert.Empty(t, findSimilar("zzz", known, 3))
	assert.Empty(t, findSimilar("", known, 3))
}
