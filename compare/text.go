package compare

import (
	"cmp"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes = sync.OnceFunc(grapheme.SetupGraphemeClasses)

// Lexical orders strings byte-wise.
func Lexical(a, b string) int {
	return strings.Compare(a, b)
}

// ByteLength orders strings by their length in bytes.
func ByteLength(a, b string) int {
	return cmp.Compare(len(a), len(b))
}

// GraphemeCount returns the number of user-perceived characters of s.
func GraphemeCount(s string) int {
	if s == "" {
		return 0
	}
	setupGraphemes()
	return grapheme.StringFromString(s).Len()
}

// Graphemes orders strings by their number of user-perceived characters
// (grapheme clusters). "e" followed by a combining accent counts as one.
func Graphemes(a, b string) int {
	return cmp.Compare(GraphemeCount(a), GraphemeCount(b))
}

// DisplayWidth orders strings by the number of terminal cells they occupy,
// honouring East Asian width. A nil context selects uax11.LatinContext.
func DisplayWidth(context *uax11.Context) Func[string] {
	if context == nil {
		context = uax11.LatinContext
	}
	return func(a, b string) int {
		return cmp.Compare(Width(a, context), Width(b, context))
	}
}

// Width returns the number of terminal cells s occupies in context.
func Width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes()
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
