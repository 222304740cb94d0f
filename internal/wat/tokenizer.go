// Package wat extracts instruction token sequences from WebAssembly text dumps.
package wat

import (
	"os"
	"regexp"
)

// singleWordOps are opcodes that appear as bare words rather than in
// namespace.op form.
var singleWordOps = map[string]bool{
	"block":       true,
	"loop":        true,
	"if":          true,
	"else":        true,
	"end":         true,
	"call":        true,
	"drop":        true,
	"return":      true,
	"nop":         true,
	"unreachable": true,
	"br":          true,
	"br_if":       true,
	"br_table":    true,
	"select":      true,
}

// declKeywords are section and declaration words, not instructions.
var declKeywords = map[string]bool{
	"module": true,
	"func":   true,
	"type":   true,
	"import": true,
	"export": true,
	"param":  true,
	"result": true,
	"local":  true,
	"global": true,
	"memory": true,
	"table":  true,
	"elem":   true,
	"data":   true,
}

var (
	splitRE    = regexp.MustCompile(`[()\s]+`)
	decimalRE  = regexp.MustCompile(`^[-+]?\d+$`)
	hexRE      = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
	dottedOpRE = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z0-9_]+)+$`)
)

// IsInstruction reports whether tok is an instruction: a dotted opcode such
// as i32.add or local.get, or one of the bare control opcodes. Numeric
// immediates and declaration keywords are rejected.
func IsInstruction(tok string) bool {
	if tok == "" {
		return false
	}
	if decimalRE.MatchString(tok) || hexRE.MatchString(tok) {
		return false
	}
	if declKeywords[tok] {
		return false
	}
	return dottedOpRE.MatchString(tok) || singleWordOps[tok]
}

// Tokenize splits WAT text on parentheses and whitespace and keeps the
// instruction tokens in source order.
func Tokenize(text string) []string {
	var tokens []string
	for _, tok := range splitRE.Split(text, -1) {
		if IsInstruction(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Instructions reads a WAT file and returns its instruction sequence, capped
// at limit tokens when limit > 0.
func Instructions(path string, limit int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tokens := Tokenize(string(data))
	if limit > 0 && len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return tokens, nil
}
