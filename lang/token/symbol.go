package token

// Symbol is a small integer handle for an interned identifier or string
// lexeme. Comparisons between symbols are plain integer comparisons; the text
// is recovered only for diagnostics and for stringifying a Value, through an
// interner.Interner.
type Symbol uint32

// NoSymbol is the zero value, used where no lexeme applies (e.g. synthetic
// tokens).
const NoSymbol Symbol = 0
