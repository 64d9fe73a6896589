// Package parser turns a tokenized bprog source into a flat sequence
// of value.Parsed, recursively unwinding `{ }` quotations, `[ ]`
// lists, and `" "` strings (spec §4.1). The bracket/quotation grammar
// is a small hand-written recursive descent over the lexeme slice
// rather than a participle struct grammar, since the nesting here is
// homogeneous (any Parsed inside any bracket) and not worth a static
// AST shape.
package parser

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/bprog-lang/bprog/pkg/lexer"
	"github.com/bprog-lang/bprog/pkg/types"
	"github.com/bprog-lang/bprog/pkg/value"
)

type cursor struct {
	toks []string
	pos  int
}

func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.toks) {
		return "", false
	}
	t := c.toks[c.pos]
	c.pos++
	return t, true
}

// ParseString tokenizes and parses text in one step.
func ParseString(text string) ([]value.Parsed, error) {
	toks, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// Parse consumes tokens front-to-back, producing the top-level
// sequence of values. A stray `}` or `]` at top level ends the parse
// the same way it terminates a nested sequence, without an error;
// any tokens after it are dropped.
func Parse(tokens []string) ([]value.Parsed, error) {
	return parseSequence(&cursor{toks: tokens})
}

// parseSequence consumes lexemes until it sees a closing bracket or
// the token stream is exhausted. Running out of tokens mid-quotation
// or mid-list is not an error — only a missing string terminator is
// fatal (point 4 of spec §4.1).
func parseSequence(c *cursor) ([]value.Parsed, error) {
	var out []value.Parsed
	for {
		t, ok := c.next()
		if !ok {
			return out, nil
		}
		switch t {
		case "}", "]":
			return out, nil
		case "{":
			inner, err := parseSequence(c)
			if err != nil {
				return nil, err
			}
			out = append(out, value.Quotation(inner))
		case "[":
			inner, err := parseSequence(c)
			if err != nil {
				return nil, err
			}
			out = append(out, value.List(inner))
		case `"`:
			section, ok := gatherUntil(c, `"`)
			if !ok {
				return nil, fmt.Errorf("parser: missing terminating %q while parsing a string", `"`)
			}
			out = append(out, value.Str(strings.Join(section, " ")))
		default:
			out = append(out, parseAtom(t))
		}
	}
}

func gatherUntil(c *cursor, delimiter string) ([]string, bool) {
	var section []string
	for {
		t, ok := c.next()
		if !ok {
			return nil, false
		}
		if t == delimiter {
			return section, true
		}
		section = append(section, t)
	}
}

// parseAtom classifies a single non-bracket lexeme: integer, then
// float, then True/False, then a known operator name, else a raw
// symbol. This order is significant (spec §4.1 Determinism) — integer
// parsing must precede float so `3` stays an exact Integer, and
// operator-name lookup must precede symbol creation so reserved names
// can never be shadowed by a user identifier.
func parseAtom(t string) value.Parsed {
	if i, ok := new(big.Int).SetString(t, 10); ok {
		return value.Num(value.NewBigInteger(i))
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return value.Num(value.NewFloat(f))
	}
	if t == "True" {
		return value.Bool(true)
	}
	if t == "False" {
		return value.Bool(false)
	}
	if op, ok := types.LookupOp(t); ok {
		return value.Function(op)
	}
	return value.Symbol(t)
}
