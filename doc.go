// Package checkedcmd declares command-line inputs as strongly-typed specifications, parses them with
// a string-based parser and validates every parsed value against a caller-supplied predicate.
//
// A program declares one tagged [Value] type per semantic input, so values that share a primitive
// type are still not interchangeable:
//
//	type inputFile struct{}
//	type rowLimit struct{}
//
//	type InputFile = checkedcmd.Value[string, inputFile]
//	type RowLimit = checkedcmd.Value[uint16, rowLimit]
//
// Each input is then declared as a spec: a [Flag] (boolean switch), a [Param] or [OptionalParam]
// (named option), an [Arg] or [OptionalArg] (positional argument), or the reserved [Help] switch.
// Params and Args carry a validator; a nil validator accepts everything.
//
//	type CmdInputFile = checkedcmd.Arg[string, inputFile]
//	type CmdRowLimit = checkedcmd.OptionalParam[uint16, rowLimit]
//
//	set, ok := checkedcmd.ParseCmd(os.Args[1:],
//	    checkedcmd.NewArg("inputfile", "csv file to read", func(f InputFile) bool {
//	        return f.Get() != ""
//	    }),
//	    checkedcmd.NewOptionalParam("1..65535", "-l", "--LineLimit", "row limit", func(n RowLimit) bool {
//	        return n.Get() > 0
//	    }),
//	    checkedcmd.NewHelp(),
//	)
//	if !ok {
//	    ...
//	}
//	input := checkedcmd.Get[*CmdInputFile](set).Value()
//	limit := checkedcmd.Get[*CmdRowLimit](set).ValueOr(checkedcmd.Wrap[rowLimit](uint16(65535)))
//
// Values are retrieved by spec type, so a set never holds two specs of the same type. A
// single-character payload ([Char]) accepts c, 'c' and "c" on the command line.
//
// Any failure, structural or from a validator, makes [ParseCmd] and [ParseSet] report false. Use
// [Parse] for a [*ParseError] that says why, and [Run] for a complete entry point that also prints
// usage text for -h/--help.
package checkedcmd
