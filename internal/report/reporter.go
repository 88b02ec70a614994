// Package report prints the result of a canister analysis.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/quantmind-br/canister-counter/internal/analyzer"
)

// SummaryHeader introduces the per-type counts
const SummaryHeader = "Canister types summary:"

// ErrNilResult indicates Write was called without a result
var ErrNilResult = errors.New("no analysis result to report")

// Reporter writes human-readable analysis reports
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Write prints one line per canister, the total, and the per-type summary
// in label order.
func (r *Reporter) Write(res *analyzer.Result) error {
	if res == nil {
		return ErrNilResult
	}

	var b strings.Builder
	for _, e := range res.Entries {
		fmt.Fprintf(&b, "Canister: %s, Type: %s\n", e.Name, e.Type)
	}

	fmt.Fprintf(&b, "\nTotal number of canisters: %d\n", res.Total)

	b.WriteString("\n" + SummaryHeader + "\n")
	for _, label := range res.Tally.Labels() {
		fmt.Fprintf(&b, "  %s: %d\n", label, res.Tally[label])
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}
