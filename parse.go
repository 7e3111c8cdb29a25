package checkedcmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/checkedcmd/argparse"
)

// Option configures [Parse].
type Option func(*config)

type config struct {
	name   string
	logger *slog.Logger
}

// WithName sets the program name shown in usage text. The default is the base name of os.Args[0].
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets a logger that receives a debug record for every parsed command line, including
// the reason a command line was rejected. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Parse matches args against set, runs every validator and returns a populated copy of set. args
// must not include the program name, typically os.Args[1:]. The caller's set is never modified, so
// one declared set may be parsed any number of times.
//
// On success, if set contains a [Help] spec and -h or --help was supplied, the generated usage text
// is stored as that spec's description.
//
// On failure Parse returns a nil set and a [*ParseError]. Both structural and validation failures
// are reported this way; when help was requested the error also carries the usage text, so --help
// works even when other inputs are missing or invalid.
func Parse(args []string, set *Set, opts ...Option) (*Set, error) {
	cfg := config{name: defaultName()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if set == nil {
		return nil, cfg.reject(&ParseError{Kind: ErrConfig, Err: errors.New("argument set is nil")})
	}

	out := set.clone()
	p, err := bind(cfg.name, out)
	if err != nil {
		return nil, cfg.reject(&ParseError{Kind: ErrConfig, Err: err})
	}

	help, hasHelp := Lookup[*Help](out)
	helpRequested := hasHelp && p.HasFlag(args, trimDashes(string(helpShort)), trimDashes(string(helpLong)))

	if err := p.Parse(args); err != nil {
		return nil, cfg.reject(newParseError(ErrStructural, err, nil, helpRequested, p))
	}
	if invalid := validate(out); len(invalid) > 0 {
		return nil, cfg.reject(newParseError(ErrValidation, nil, invalid, helpRequested, p))
	}

	if hasHelp && help.Value().Get() {
		help.SetDescription(Description(p.Usage()))
	}
	if cfg.logger != nil {
		cfg.logger.Debug("command line accepted",
			slog.String("name", cfg.name),
			slog.Int("specs", out.Len()),
		)
	}
	return out, nil
}

// ParseSet is like [Parse] but only reports whether parsing succeeded. A false result carries no
// set and no detail.
func ParseSet(args []string, set *Set, opts ...Option) (*Set, bool) {
	out, err := Parse(args, set, opts...)
	if err != nil {
		return nil, false
	}
	return out, true
}

// ParseCmd builds a set from specs in declaration order and parses args against it. Two specs of
// the same type make it fail like any other error.
//
//	set, ok := checkedcmd.ParseCmd(os.Args[1:],
//	    checkedcmd.NewFlag[hasHeadLine]("-H", "--HasHeadLine", "first row is a headline"),
//	    checkedcmd.NewArg("inputfile", "csv file to read", inputFileOK),
//	    checkedcmd.NewHelp(),
//	)
func ParseCmd(args []string, specs ...Spec) (*Set, bool) {
	set, err := NewSet(specs...)
	if err != nil {
		return nil, false
	}
	return ParseSet(args, set)
}

func newParseError(kind, err error, invalid []string, helpRequested bool, p *argparse.Parser) *ParseError {
	pe := &ParseError{
		Kind:          kind,
		Specs:         invalid,
		HelpRequested: helpRequested,
		Err:           err,
	}
	if helpRequested {
		pe.Usage = p.Usage()
	}
	return pe
}

func (c *config) reject(err *ParseError) error {
	if c.logger != nil {
		c.logger.Debug("command line rejected",
			slog.String("name", c.name),
			slog.String("kind", err.Kind.Error()),
			slog.Any("error", err),
		)
	}
	return err
}

func defaultName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "command"
	}
	return filepath.Base(os.Args[0])
}

func trimDashes(name string) string {
	return strings.TrimLeft(name, "-")
}
