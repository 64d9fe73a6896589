// Package lexer turns bprog source text into a flat sequence of
// lexemes. Splitting is whitespace-only (spec §4.1): punctuation like
// `{ } [ ] "` is only recognized when it already stands alone as its
// own whitespace-delimited token, exactly like the reference's
// split_whitespace tokenizer (utility.rs::to_tokens). The rule table is
// built on participle's SimpleLexer, reused here purely as a tokenizer
// — the bracket/quotation nesting grammar is handled by pkg/parser's
// hand-written recursive descent, not by a participle struct grammar.
package lexer

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

const (
	tokenWhitespace = "Whitespace"
	tokenLexeme     = "Lexeme"
)

var definition = lexer.MustSimple([]lexer.SimpleRule{
	{Name: tokenWhitespace, Pattern: `[ \t\r\n]+`},
	{Name: tokenLexeme, Pattern: `[^ \t\r\n]+`},
})

// Tokenize splits text into its whitespace-delimited lexemes in order.
func Tokenize(text string) ([]string, error) {
	lex, err := definition.Lex("", strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	var out []string
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			break
		}
		if tok.Type == definition.Symbols()[tokenWhitespace] {
			continue
		}
		out = append(out, tok.Value)
	}
	return out, nil
}
