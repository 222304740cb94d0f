// Package trim shortens WAT dumps to a fixed number of lines. The kept
// window is always contiguous and in original order, and every trimmed file
// is recorded in an audit log so any variant can be reconstructed.
package trim

import (
	"fmt"
	"math/rand"
	"strings"
)

// Method selects which contiguous window of lines survives.
type Method string

const (
	Head   Method = "head"   // first target lines
	Middle Method = "middle" // centered window
	Tail   Method = "tail"   // last target lines
	Random Method = "random" // uniformly placed window
)

// Methods lists the valid method names.
func Methods() []string {
	return []string{string(Head), string(Middle), string(Tail), string(Random)}
}

// ParseMethod validates a method name.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case Head, Middle, Tail, Random:
		return Method(s), nil
	default:
		return "", fmt.Errorf("unknown trim method %q (valid: %s)", s, strings.Join(Methods(), ", "))
	}
}

// Start returns the index of the first kept line for a file of total
// lines. When target covers the whole file the window starts at 0. Only the
// random method consults rng, drawing uniformly over every legal position
// including both ends.
func Start(method Method, total, target int, rng *rand.Rand) int {
	if target >= total {
		return 0
	}
	switch method {
	case Middle:
		return (total - target) / 2
	case Tail:
		return total - target
	case Random:
		return rng.Intn(total - target + 1)
	default:
		return 0
	}
}

// Window slices the kept lines out of lines: target lines beginning at
// start, or the whole input when target covers it.
func Window(lines []string, target, start int) []string {
	if target >= len(lines) {
		return lines
	}
	return lines[start : start+target]
}

// SplitLines splits text into lines that keep their original endings, so
// rejoining kept lines reproduces the source bytes exactly.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
