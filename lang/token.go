// Package lang is the text front-end: a whitespace tokenizer feeding an
// RPN program into the stack package's Build, driven by a symbol table
// mapping tokens to module constructors. Grounded on
// audio_stack/src/lib.rs's parse_ops/parse_graph.
package lang

import "strings"

// Token is one whitespace-delimited word of source text, already split on
// its optional ":arg" parameter suffix.
type Token struct {
	Name string
	Arg  string // empty if the token had no ":arg" suffix
	HasArg bool
}

// tokenize splits program into Tokens. Brackets and commas are treated as
// whitespace (so "[0.5, 0.0] pan1" reads the same as "0.5 0.0 pan1"), and
// "//" begins a line comment extending to the next newline.
func tokenize(program string) []Token {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(program)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '/' && i+1 < len(runes) && runes[i+1] == '/':
			flush()
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
		case r == '[' || r == ']' || r == ',':
			flush()
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		if idx := strings.IndexByte(w, ':'); idx >= 0 {
			tokens = append(tokens, Token{Name: w[:idx], Arg: w[idx+1:], HasArg: true})
		} else {
			tokens = append(tokens, Token{Name: w})
		}
	}
	return tokens
}
