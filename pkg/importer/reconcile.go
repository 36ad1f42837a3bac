// This file implements the reconciliation engine: the precedence rule
// deciding the fate of each candidate against the store.
package importer

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

// Outcome classifies the reconciliation result for one row.
type Outcome string

// Outcome tags. Skipped outcomes originate at the parser, never from the
// engine.
const (
	OutcomeInserted    Outcome = "inserted"
	OutcomeOverwritten Outcome = "overwritten"
	OutcomeUnchanged   Outcome = "unchanged"
	OutcomeSkipped     Outcome = "skipped"
)

// Store is the narrow persistence surface the engine needs. *sqlite.Backend
// satisfies it.
type Store interface {
	FindComponent(identifier string) (*types.Component, error)
	InsertComponent(c *types.Component) (*types.Component, error)
	UpdateComponent(identifier string, fields types.ComponentFields) (*types.Component, error)
}

// Decide applies the precedence rule to a candidate and the existing record
// (nil when the identifier is new). Pure function, no side effects.
//
// Higher price always wins, even when the candidate lacks a description the
// existing record has. At equal price, description presence breaks the tie in
// the candidate's favor only when the existing record has none. Everything
// else leaves the existing record untouched.
func Decide(existing *types.Component, cand *Candidate) Outcome {
	if existing == nil {
		return OutcomeInserted
	}
	switch {
	case cand.Price.GreaterThan(existing.Price):
		return OutcomeOverwritten
	case cand.Price.Equal(existing.Price):
		if !existing.HasDescription() && cand.HasDescription() {
			return OutcomeOverwritten
		}
		return OutcomeUnchanged
	default:
		return OutcomeUnchanged
	}
}

// Engine reconciles candidates against a store, one at a time. It is
// stateless between calls: each candidate sees the store as left by the
// previous one.
type Engine struct {
	store Store
}

// NewEngine creates an engine over the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Reconcile decides and applies the fate of one candidate: at most one store
// read and one store write.
func (e *Engine) Reconcile(cand *Candidate) (Outcome, error) {
	existing, err := e.store.FindComponent(cand.Identifier)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			return "", fmt.Errorf("looking up %s: %w", cand.Identifier, err)
		}
		existing = nil
	}

	outcome := Decide(existing, cand)
	switch outcome {
	case OutcomeInserted:
		_, err = e.store.InsertComponent(&types.Component{
			Identifier:  cand.Identifier,
			Description: cand.Description,
			Price:       cand.Price,
		})
		if err != nil {
			return "", fmt.Errorf("inserting %s: %w", cand.Identifier, err)
		}
	case OutcomeOverwritten:
		// At equal price the write is description-only in effect: the
		// stored price value does not change.
		_, err = e.store.UpdateComponent(cand.Identifier, types.ComponentFields{
			Description: &cand.Description,
			Price:       &cand.Price,
		})
		if err != nil {
			return "", fmt.Errorf("overwriting %s: %w", cand.Identifier, err)
		}
	}
	return outcome, nil
}
