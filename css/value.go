package css

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrBadValue is returned for values that cannot be placed into a
// declaration as is.
var ErrBadValue = errors.New("bad css value")

// ParseValue tokenizes a declaration value and classifies it. Values which
// would terminate the declaration or the rule early (";", braces, unbalanced
// parentheses, unterminated strings) are rejected.
func ParseValue(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Value{}, fmt.Errorf("%w: empty", ErrBadValue)
	}

	lexer := css.NewLexer(parse.NewInputString(raw))
	tokens := make([]css.Token, 0, 4)
	depth := 0
	for {
		tt, data := lexer.Next()

		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return Value{}, fmt.Errorf("%w '%s': %w", ErrBadValue, raw, err)
			}
			if depth != 0 {
				return Value{}, fmt.Errorf("%w '%s': unbalanced parentheses", ErrBadValue, raw)
			}
			return classify(raw, tokens), nil

		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken,
			css.BadStringToken, css.BadURLToken, css.CDOToken, css.CDCToken:
			return Value{}, fmt.Errorf("%w '%s': unexpected %s", ErrBadValue, raw, tt)

		case css.FunctionToken, css.LeftParenthesisToken:
			depth++

		case css.RightParenthesisToken:
			if depth == 0 {
				return Value{}, fmt.Errorf("%w '%s': unbalanced parentheses", ErrBadValue, raw)
			}
			depth--

		case css.StringToken:
			if len(data) < 2 || data[len(data)-1] != data[0] {
				return Value{}, fmt.Errorf("%w '%s': unterminated string", ErrBadValue, raw)
			}

		case css.CommentToken:
			continue
		}
		tokens = append(tokens, css.Token{TokenType: tt, Data: parse.Copy(data)})
	}
}

// classify fills numeric and keyword parts of a single token value. Values
// made of several tokens (functions, lists, shorthands) keep their text as
// Keyword.
func classify(raw string, tokens []css.Token) Value {
	val := Value{Raw: raw}
	if len(tokens) != 1 {
		val.Keyword = raw
		return val
	}

	t := tokens[0]
	switch t.TokenType {
	case css.DimensionToken:
		num, unit := parse.Dimension(t.Data)
		val.Value, _ = strconv.ParseFloat(string(t.Data[:num]), 64)
		val.Unit = strings.ToLower(string(t.Data[num : num+unit]))
	case css.PercentageToken:
		val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
		val.Unit = "%"
	case css.NumberToken:
		val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
	case css.IdentToken:
		val.Keyword = strings.ToLower(string(t.Data))
	case css.StringToken:
		val.Keyword = unquote(string(t.Data))
	default:
		// hashes, urls and such
		val.Keyword = raw
	}
	return val
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
