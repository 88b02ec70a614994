// Package analyzer counts the canisters declared in a parsed dfx.json and
// groups them by type.
package analyzer

import (
	"maps"
	"slices"

	"github.com/quantmind-br/canister-counter/internal/manifest"
)

const (
	// CanistersField is the top-level manifest field holding canister definitions
	CanistersField = "canisters"

	// TypeField is the canister attribute holding its type label
	TypeField = "type"

	// UnknownType labels canisters whose type is missing or not a string
	UnknownType = "unknown"
)

// Entry is a single canister and the type it was counted under
type Entry struct {
	Name string
	Type string
}

// Tally maps a type label to the number of canisters carrying it
type Tally map[string]int

// Labels returns the labels in ascending order
func (t Tally) Labels() []string {
	return slices.Sorted(maps.Keys(t))
}

// Sum returns the total count over all labels
func (t Tally) Sum() int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}

// Result is the outcome of analyzing a manifest
type Result struct {
	Total   int
	Entries []Entry
	Tally   Tally
}

// Analyze counts the canisters of a manifest and tallies them by type.
// Entries are ordered by canister name. A "canisters" field that is missing
// or not an object yields a *MissingFieldError.
func Analyze(root manifest.Value) (*Result, error) {
	canisters, ok := root.Field(CanistersField).Object()
	if !ok {
		return nil, NewMissingFieldError(CanistersField)
	}

	names := slices.Sorted(maps.Keys(canisters))
	res := &Result{
		Total:   len(names),
		Entries: make([]Entry, 0, len(names)),
		Tally:   make(Tally),
	}

	for _, name := range names {
		label := TypeOf(canisters[name])
		res.Entries = append(res.Entries, Entry{Name: name, Type: label})
		res.Tally[label]++
	}

	return res, nil
}

// TypeOf returns the type label of a canister definition
func TypeOf(def manifest.Value) string {
	if label, ok := def.Field(TypeField).AsString(); ok {
		return label
	}
	return UnknownType
}
