package corpus

import (
	"log/slog"
	"os"

	"github.com/tamadalab/wasm-wat-trimming/internal/ngram"
	"github.com/tamadalab/wasm-wat-trimming/internal/wat"
)

// Profile is the in-memory representation of one corpus entry: its raw
// instruction sequence and one n-gram table per size in the configured
// range. Missing artifacts leave the corresponding parts empty, which
// scores 0 against everything.
type Profile struct {
	Target Target
	Tokens []string
	Grams  map[int]ngram.Table
}

// Loader resolves corpus entries under Root into profiles. Serialized gram
// files take precedence over tables derived from the WAT dump, so matrices
// built from a pre-extracted tree reproduce exactly.
type Loader struct {
	Root   string
	NRange ngram.NRange
	Limit  int // cap on instruction sequence length, 0 means unlimited
}

// Load builds the profile for a single target.
func (l *Loader) Load(t Target) *Profile {
	p := &Profile{Target: t, Grams: make(map[int]ngram.Table, l.NRange.Len())}

	watPath := WATPath(l.Root, t)
	tokens, err := wat.Instructions(watPath, l.Limit)
	if err != nil {
		slog.Warn("wat file unavailable, using empty sequence", "path", watPath, "error", err)
	}
	p.Tokens = tokens

	for n := l.NRange.Min; n <= l.NRange.Max; n++ {
		gramPath := GramPath(l.Root, t, n)
		table, err := ngram.ReadFile(gramPath)
		if err == nil {
			p.Grams[n] = table
			continue
		}
		if os.IsNotExist(err) {
			slog.Debug("gram file absent, building table from wat", "path", gramPath)
		} else {
			slog.Warn("gram file unreadable, building table from wat", "path", gramPath, "error", err)
		}
		p.Grams[n] = ngram.Build(tokens, n)
	}
	return p
}

// LoadAll loads profiles for every target, keyed by axis label.
func (l *Loader) LoadAll(targets []Target) map[string]*Profile {
	profiles := make(map[string]*Profile, len(targets))
	for _, t := range targets {
		profiles[t.Label()] = l.Load(t)
	}
	return profiles
}
