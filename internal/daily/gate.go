package daily

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Decision is the outcome of a gate check.
type Decision int

const (
	// Proceed means the marker was set to today and a session may start.
	Proceed Decision = iota
	// AlreadyPlayed means a session was already started today.
	AlreadyPlayed
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case AlreadyPlayed:
		return "already_played"
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// Gate allows at most one session start per calendar date.
//
// With a plain MarkerStore the check is read-then-write: two processes
// racing on the same day can both proceed. Stores implementing Claimer are
// used through their atomic Claim instead.
type Gate struct {
	store MarkerStore
}

func NewGate(store MarkerStore) *Gate {
	return &Gate{store: store}
}

// Check runs once per session, before any guess is accepted.
// today must be a YYYY-MM-DD key. Store failures are returned as errors;
// a refusal is a Decision, not an error.
func (g *Gate) Check(ctx context.Context, today string) (Decision, error) {
	if _, err := ParseDateKey(today); err != nil {
		return AlreadyPlayed, err
	}

	if c, ok := g.store.(Claimer); ok {
		claimed, err := c.Claim(ctx, today)
		if err != nil {
			return AlreadyPlayed, fmt.Errorf("daily gate: %w", err)
		}
		if !claimed {
			log.Debug().Str("date", today).Msg("marker already set")
			return AlreadyPlayed, nil
		}
		log.Debug().Str("date", today).Msg("marker claimed")
		return Proceed, nil
	}

	last, err := g.store.Last(ctx)
	if err != nil {
		return AlreadyPlayed, fmt.Errorf("daily gate: %w", err)
	}
	if last == today {
		log.Debug().Str("date", today).Msg("marker already set")
		return AlreadyPlayed, nil
	}
	if err := g.store.Mark(ctx, today); err != nil {
		return AlreadyPlayed, fmt.Errorf("daily gate: %w", err)
	}
	log.Debug().Str("date", today).Str("previous", last).Msg("marker written")
	return Proceed, nil
}
