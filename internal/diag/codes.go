package diag

import "fmt"

// Code is a compact, stable identifier for one diagnostic kind. Ranges group
// kinds by the phase that raises them, mirroring how the string ID is
// rendered (LEX/PP/SYN/SEM/IO/DRV prefixes below).
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedBlock  Code = 1003
	LexBadNumber          Code = 1004
	LexTokenTooLong       Code = 1005

	// Preprocessor (2000-2999)
	PPMacroRedefined        Code = 2001
	PPUnknownMacro          Code = 2002
	PPMacroArgCountMismatch Code = 2003
	PPIncludeNotFound       Code = 2004
	PPIncludeDepthExceeded  Code = 2005
	PPUnterminatedIfdef     Code = 2006
	PPElseWithoutIf         Code = 2007
	PPEndifWithoutIf        Code = 2008
	PPUnknownDirective      Code = 2009
	PPExpectedMacroName     Code = 2010

	// Syntax (3000-3999)
	SynExpectedToken       Code = 3001
	SynUnexpectedEOF       Code = 3002
	SynExpectedIdentifier  Code = 3003
	SynUnclosedModule      Code = 3004
	SynDanglingEndmodule   Code = 3005

	// Semantic / elaboration-adjacent — named exactly per the option
	// validator's mandatory/compat/default-promotion overrides.
	DuplicateDefinition            Code = 4001
	BadProceduralForce              Code = 4002
	StaticInitializerMustBeExplicit Code = 4003
	ImplicitConvert                 Code = 4004
	BadFinishNum                    Code = 4005
	NonstandardSysFunc              Code = 4006
	NonstandardForeach               Code = 4007
	NonstandardDist                 Code = 4008
	IndexOOB                        Code = 4009
	RangeOOB                        Code = 4010
	RangeWidthOOB                   Code = 4011
	ImplicitNamedPortTypeMismatch   Code = 4012
	SplitDistWeightOp               Code = 4013
	UnknownModule                   Code = 4014

	// I/O (5000-5999)
	IOLoadFileError    Code = 5001
	IODirectoryMissing Code = 5002

	// Project/driver-level (6000-6999)
	ProjNoInputFiles          Code = 6001
	ProjInvalidOptionValue    Code = 6002
	ProjCrossOptionViolation  Code = 6003
)

var codeDescription = map[Code]string{
	UnknownCode:                     "unknown error",
	LexUnknownChar:                  "unknown character",
	LexUnterminatedString:           "unterminated string literal",
	LexUnterminatedBlock:            "unterminated block comment",
	LexBadNumber:                    "malformed numeric literal",
	LexTokenTooLong:                 "token exceeds maximum length",
	PPMacroRedefined:                "macro redefined with a different body",
	PPUnknownMacro:                  "use of undefined macro",
	PPMacroArgCountMismatch:         "macro invoked with the wrong number of arguments",
	PPIncludeNotFound:               "include file not found",
	PPIncludeDepthExceeded:          "maximum include depth exceeded",
	PPUnterminatedIfdef:             "unterminated conditional compilation block",
	PPElseWithoutIf:                 "`else/`elsif without matching `ifdef",
	PPEndifWithoutIf:                "`endif without matching `ifdef",
	PPUnknownDirective:              "unknown preprocessor directive",
	PPExpectedMacroName:             "expected macro name after `define",
	SynExpectedToken:                "expected token",
	SynUnexpectedEOF:                "unexpected end of file",
	SynExpectedIdentifier:           "expected identifier",
	SynUnclosedModule:               "module declaration missing endmodule",
	SynDanglingEndmodule:            "endmodule without matching module",
	DuplicateDefinition:             "duplicate definition",
	BadProceduralForce:              "invalid procedural force/release target",
	StaticInitializerMustBeExplicit: "static variable initializer must be explicit",
	ImplicitConvert:                 "implicit conversion may lose information",
	BadFinishNum:                    "invalid argument to $finish",
	NonstandardSysFunc:              "use of a nonstandard system function",
	NonstandardForeach:              "nonstandard foreach loop syntax",
	NonstandardDist:                 "nonstandard distribution syntax",
	IndexOOB:                        "index out of bounds",
	RangeOOB:                        "range out of bounds",
	RangeWidthOOB:                   "range width out of bounds",
	ImplicitNamedPortTypeMismatch:   "implicit named port connection type mismatch",
	SplitDistWeightOp:               "split distribution weight operator misuse",
	UnknownModule:                   "unknown module referenced by an instance",
	IOLoadFileError:                 "unable to find or open file",
	IODirectoryMissing:              "directory does not exist",
	ProjNoInputFiles:                "no input files",
	ProjInvalidOptionValue:          "invalid option value",
	ProjCrossOptionViolation:        "cross-option invariant violated",
}

// ID renders the stable "PREFIX%04d" form used in CLI output.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("PP%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("DRV%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description registered for c.
func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// OptionName returns the `-W` option name used to reference c in -W
// severity overrides, e.g. "duplicate-definition".
// Only diagnostics that are meaningfully user-tunable carry one; codes that
// return "" cannot be targeted by -W.
func (c Code) OptionName() string {
	switch c {
	case DuplicateDefinition:
		return "duplicate-definition"
	case BadProceduralForce:
		return "bad-procedural-force"
	case StaticInitializerMustBeExplicit:
		return "static-init-order"
	case ImplicitConvert:
		return "implicit-conv"
	case BadFinishNum:
		return "finish-num"
	case NonstandardSysFunc:
		return "nonstandard-sys-func"
	case NonstandardForeach:
		return "nonstandard-foreach"
	case NonstandardDist:
		return "nonstandard-dist"
	case IndexOOB:
		return "index-oob"
	case RangeOOB:
		return "range-oob"
	case RangeWidthOOB:
		return "range-width-oob"
	case ImplicitNamedPortTypeMismatch:
		return "implicit-port-type-mismatch"
	case SplitDistWeightOp:
		return "split-dist-weight-op"
	case UnknownModule:
		return "unknown-module"
	default:
		return ""
	}
}
