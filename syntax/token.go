package syntax

// Kind is the lexical class of a token. Structurally meaningful symbols get
// their own kind so callers dispatch on tags, not on raw text.
type Kind uint8

const (
	KindNone Kind = iota
	KindIdent
	KindKeyword
	KindNumber
	KindCharLit
	KindStringLit
	KindOperator // run of operator characters with no reserved meaning

	KindOpenParen
	KindOpenBracket
	KindOpenBrace
	KindCloseParen
	KindCloseBracket
	KindCloseBrace

	KindComma
	KindSemi
	KindDot

	KindEq     // =
	KindArrow  // => or ⇒
	KindLArrow // <- or ←
	KindColon  // :
	KindHash   // #
	KindAt     // @
)

// Word identifies a reserved word when Kind is KindKeyword.
type Word uint8

const (
	WordNone Word = iota
	WordAbstract
	WordCase
	WordCatch
	WordClass
	WordDef
	WordDo
	WordElse
	WordExtends
	WordFinal
	WordFinally
	WordFor
	WordForSome
	WordIf
	WordImplicit
	WordImport
	WordLazy
	WordMatch
	WordNew
	WordObject
	WordOverride
	WordPackage
	WordPrivate
	WordProtected
	WordReturn
	WordSealed
	WordSuper
	WordThis
	WordThrow
	WordTrait
	WordTry
	WordType
	WordVal
	WordVar
	WordWhile
	WordWith
	WordYield
)

var keywords = map[string]Word{
	"abstract":  WordAbstract,
	"case":      WordCase,
	"catch":     WordCatch,
	"class":     WordClass,
	"def":       WordDef,
	"do":        WordDo,
	"else":      WordElse,
	"extends":   WordExtends,
	"final":     WordFinal,
	"finally":   WordFinally,
	"for":       WordFor,
	"forSome":   WordForSome,
	"if":        WordIf,
	"implicit":  WordImplicit,
	"import":    WordImport,
	"lazy":      WordLazy,
	"match":     WordMatch,
	"new":       WordNew,
	"object":    WordObject,
	"override":  WordOverride,
	"package":   WordPackage,
	"private":   WordPrivate,
	"protected": WordProtected,
	"return":    WordReturn,
	"sealed":    WordSealed,
	"super":     WordSuper,
	"this":      WordThis,
	"throw":     WordThrow,
	"trait":     WordTrait,
	"try":       WordTry,
	"type":      WordType,
	"val":       WordVal,
	"var":       WordVar,
	"while":     WordWhile,
	"with":      WordWith,
	"yield":     WordYield,
}

// Token is one lexical token. Start and End are rune offsets, [Start, End).
// Index is the token's position in the scanner's token stream.
type Token struct {
	Kind  Kind
	Word  Word
	Start int
	End   int
	Index int
}

func (t Token) Valid() bool { return t.Kind != KindNone }

// IsOpen reports whether k opens a bracket group.
func IsOpen(k Kind) bool {
	return k == KindOpenParen || k == KindOpenBracket || k == KindOpenBrace
}

// IsClose reports whether k closes a bracket group.
func IsClose(k Kind) bool {
	return k == KindCloseParen || k == KindCloseBracket || k == KindCloseBrace
}

func closes(open, close Kind) bool {
	switch open {
	case KindOpenParen:
		return close == KindCloseParen
	case KindOpenBracket:
		return close == KindCloseBracket
	case KindOpenBrace:
		return close == KindCloseBrace
	}
	return false
}

func isOperatorRune(r rune) bool {
	switch r {
	case '!', '#', '%', '&', '*', '+', '-', '/', ':', '<', '=', '>', '?', '@', '\\', '^', '|', '~', '⇒', '←':
		return true
	}
	return false
}

// operatorKind maps a scanned operator run to its reserved kind, if any.
func operatorKind(text string) Kind {
	switch text {
	case "=":
		return KindEq
	case "=>", "⇒":
		return KindArrow
	case "<-", "←":
		return KindLArrow
	case ":":
		return KindColon
	case "#":
		return KindHash
	case "@":
		return KindAt
	}
	return KindOperator
}
