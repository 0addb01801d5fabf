// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package commit

import (
	"fmt"

	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/models"
)

// GatheringPhase is the stage a [BatchScheduler] has reached within its
// commit session. The phase advances monotonically and is never reset; a new
// session gets a fresh scheduler instead.
type GatheringPhase int

const (
	// PhasePriority gathers only the priority user types.
	PhasePriority GatheringPhase = iota

	// PhaseRegular gathers every remaining user type.
	PhaseRegular

	// PhaseDone is terminal: nothing further is gathered this session.
	PhaseDone
)

// Next returns the phase that follows p. PhaseDone is terminal and returns
// itself. No transition ever skips a phase.
func (p GatheringPhase) Next() GatheringPhase {
	switch p {
	case PhasePriority:
		return PhaseRegular
	case PhaseRegular:
		return PhaseDone
	case PhaseDone:
		return PhaseDone
	default:
		panic(fmt.Sprintf("commit: unknown gathering phase %d", p))
	}
}

// String returns a log-friendly name for the phase.
func (p GatheringPhase) String() string {
	switch p {
	case PhasePriority:
		return "priority"
	case PhaseRegular:
		return "regular"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// BatchScheduler gathers commit contributions for one commit session.
//
// A scheduler is created per session with the set of types eligible for
// commit and a registry of per-type contributors, and walks its phases in a
// single finite pass: priority types first, then regular types, then done.
// Changes that appear after a phase has been exhausted are intentionally not
// picked up mid-session; they wait for the next session, which bounds every
// session to a finite amount of work.
//
// A scheduler is affine to one session goroutine and must not be shared.
type BatchScheduler struct {
	eligible models.DataTypeSet
	registry ContributorRegistry
	phase    GatheringPhase
	logger   *logger.Logger
}

// NewBatchScheduler constructs a scheduler for one commit session.
//
// eligible must include [models.Nigori]: encryption-key metadata is gathered
// in every session so that key rotations always precede data committed under
// the new key. Violating this is a programming error and panics.
func NewBatchScheduler(eligible models.DataTypeSet, registry ContributorRegistry, log *logger.Logger) *BatchScheduler {
	if !eligible.Has(models.Nigori) {
		panic("commit: eligible types must include nigori")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BatchScheduler{
		eligible: eligible,
		registry: registry,
		phase:    PhasePriority,
		logger:   log,
	}
}

// Phase returns the scheduler's current gathering phase.
func (s *BatchScheduler) Phase() GatheringPhase {
	return s.phase
}

// GatherContributions collects up to maxEntries pending entries for the next
// commit batch and returns them keyed by data type, in gathering order.
//
// Nigori is attempted first regardless of phase; if it yields anything, the
// batch contains only the Nigori contribution so key metadata is never mixed
// with other types. Otherwise types belonging to the current phase are
// queried in ascending type order until capacity is reached. Whenever a
// phase yields fewer entries than the remaining capacity it is exhausted for
// this session: the scheduler advances to the next phase and keeps gathering
// within the same call, so a single call can span phases without the caller
// retrying. Once PhaseDone is reached every subsequent call returns an empty
// map.
//
// maxEntries must be positive; a zero or negative capacity is a caller bug
// and panics.
func (s *BatchScheduler) GatherContributions(maxEntries int) *ContributionMap {
	if maxEntries <= 0 {
		panic(fmt.Sprintf("commit: maxEntries must be positive, got %d", maxEntries))
	}

	out := NewContributionMap()
	if s.phase == PhaseDone {
		return out
	}

	// Nigori reservation: key-bag updates must reach the server before any
	// entity encrypted under the new keys, so they always ship alone.
	if n := s.gatherFromType(out, models.Nigori, maxEntries); n > 0 {
		s.logger.Debug().Int("entries", n).Msg("gathered nigori-only commit batch")
		return out
	}

	total := 0
	for s.phase != PhaseDone && total < maxEntries {
		for _, t := range s.phaseTypes().Slice() {
			if total == maxEntries {
				break
			}
			total += s.gatherFromType(out, t, maxEntries-total)
		}

		if total < maxEntries {
			// The current phase has no more work at this moment.
			s.phase = s.phase.Next()
		}
	}

	s.logger.Debug().
		Stringer("phase", s.phase).
		Int("entries", total).
		Int("types", out.Len()).
		Msg("gathered commit contributions")

	return out
}

// phaseTypes returns the user-visible types gathered during the current
// phase.
func (s *BatchScheduler) phaseTypes() models.DataTypeSet {
	switch s.phase {
	case PhasePriority:
		return s.eligible.Intersect(models.PriorityTypes())
	case PhaseRegular:
		return s.eligible.Difference(models.PriorityTypes().Add(models.Nigori))
	default:
		return models.DataTypeSet{}
	}
}

// gatherFromType requests a contribution for t bounded by maxEntries and
// records it in out. A missing contributor is tolerated: the type is logged
// and contributes zero entries, so a misconfigured type never aborts the
// whole batch. A contribution exceeding the requested bound is a contract
// breach by the contributor and panics.
func (s *BatchScheduler) gatherFromType(out *ContributionMap, t models.DataType, maxEntries int) int {
	contributor, ok := s.registry[t]
	if !ok || contributor == nil {
		s.logger.Error().Stringer("type", t).Msg("no contributor registered for eligible type")
		return 0
	}

	contribution := contributor.GetContribution(maxEntries)
	n := contribution.EntryCount()
	if n == 0 {
		return 0
	}
	if n > maxEntries {
		panic(fmt.Sprintf("commit: contributor for %s returned %d entries, bound was %d", t, n, maxEntries))
	}

	out.Put(contribution)
	return n
}
