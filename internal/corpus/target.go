// Package corpus models the benchmark corpus: which (algorithm, language)
// pairs participate, where their artifacts live on disk, and how they load
// into comparable profiles.
package corpus

// Target identifies one corpus entry by algorithm and source language.
type Target struct {
	Algo string
	Lang string
}

// Label returns the matrix axis label for the target.
func (t Target) Label() string { return t.Algo + "_" + t.Lang }

// DefaultTargets is the fixed fifteen-entry selection, in matrix axis order.
var DefaultTargets = []Target{
	{Algo: "bubsort", Lang: "go"},
	{Algo: "collatz", Lang: "go"},
	{Algo: "collatz", Lang: "js"},
	{Algo: "bubsort", Lang: "js"},
	{Algo: "helloworld", Lang: "go"},
	{Algo: "fizzbuzz", Lang: "go"},
	{Algo: "wordcount", Lang: "go"},
	{Algo: "collatz", Lang: "rust"},
	{Algo: "bubsort", Lang: "rust"},
	{Algo: "wordcount", Lang: "c"},
	{Algo: "fizzbuzz", Lang: "c"},
	{Algo: "collatz", Lang: "c"},
	{Algo: "bubsort", Lang: "c"},
	{Algo: "bubsort", Lang: "ts"},
	{Algo: "helloworld", Lang: "ts"},
}

// Labels returns the axis labels for targets, in order.
func Labels(targets []Target) []string {
	labels := make([]string, len(targets))
	for i, t := range targets {
		labels[i] = t.Label()
	}
	return labels
}
