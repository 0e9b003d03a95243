package pwz

import (
	"errors"

	"github.com/npillmayer/pwz/lcrs"
)

// Errors returned by derivations and by grammar construction.
var (
	ErrCycleLimit            = errors.New("cycle limit exceeded")
	ErrUnknownExpression     = errors.New("unknown expression type")
	ErrUndefinedNonTerminal  = errors.New("undefined non-terminal")
	ErrDuplicateRule         = errors.New("duplicate rule")
	ErrIllFounded            = lcrs.ErrIllFounded
	ErrNoGrammar             = errors.New("no grammar")
	ErrDerivationNotFinished = errors.New("derivation not finished")
)
