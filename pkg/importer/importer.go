// This file implements the import driver: parse, reconcile each candidate in
// file order, aggregate the outcome summary.
package importer

import (
	"context"
	"fmt"
	"io"
	"os"
)

// RowOutcome is the per-row classification of one reconciled candidate.
type RowOutcome struct {
	Line       int     `json:"line"`
	Identifier string  `json:"identifier"`
	Outcome    Outcome `json:"outcome"`
}

// Summary aggregates the outcomes of one import batch.
type Summary struct {
	Inserted    int `json:"inserted"`
	Overwritten int `json:"overwritten"`
	Unchanged   int `json:"unchanged"`
	Skipped     int `json:"skipped"`

	// Rows holds per-row outcomes when the importer was built with
	// WithRowOutcomes. Skipped rows do not appear here; they are counted
	// at the parser stage without an identifier to report.
	Rows []RowOutcome `json:"rows,omitempty"`
}

// Importer drives a CSV batch through the parser and the reconciliation
// engine. Stateless between invocations; one Importer may run many batches.
type Importer struct {
	engine *Engine
	opts   *options
}

// New creates an importer over the given store.
func New(store Store, opts ...Option) *Importer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Importer{
		engine: NewEngine(store),
		opts:   o,
	}
}

// ImportFile runs a batch from a CSV file on disk.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return i.Import(ctx, f)
}

// Import parses and reconciles every row in file order. Mutations applied
// before a failure or a context cancellation stay committed; the partial
// summary is returned alongside the error in both cases.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Summary, error) {
	parser, err := NewParser(r)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	finish := func() *Summary {
		summary.Skipped = parser.Skipped()
		return summary
	}

	for {
		if err := ctx.Err(); err != nil {
			return finish(), err
		}

		cand, err := parser.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return finish(), err
		}

		outcome, err := i.engine.Reconcile(cand)
		if err != nil {
			return finish(), err
		}

		switch outcome {
		case OutcomeInserted:
			summary.Inserted++
		case OutcomeOverwritten:
			summary.Overwritten++
		case OutcomeUnchanged:
			summary.Unchanged++
		}
		if i.opts.rowOutcomes {
			summary.Rows = append(summary.Rows, RowOutcome{
				Line:       cand.Line,
				Identifier: cand.Identifier,
				Outcome:    outcome,
			})
		}

		i.opts.logger.Debug().
			Int("line", cand.Line).
			Str("identifier", cand.Identifier).
			Str("outcome", string(outcome)).
			Msg("reconciled row")
	}

	finish()
	i.opts.logger.Info().
		Int("inserted", summary.Inserted).
		Int("overwritten", summary.Overwritten).
		Int("unchanged", summary.Unchanged).
		Int("skipped", summary.Skipped).
		Msg("import complete")

	return summary, nil
}
