// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/store"
	"github.com/mkarev/vault-sync/internal/validators"
	"github.com/mkarev/vault-sync/models"
)

// maxCommitBatchEntries caps a single commit request. Well-behaved clients
// bound their batches far below this; the cap only guards against abuse.
const maxCommitBatchEntries = 1000

// commitService is the concrete implementation of CommitService. It applies
// each entry of a batch independently against the EntityRepository, so one
// conflicting entry never poisons the rest of the batch.
type commitService struct {
	entityRepository store.EntityRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewCommitService constructs a CommitService wired to the given
// EntityRepository.
func NewCommitService(entityRepository store.EntityRepository, logger *logger.Logger) CommitService {
	return &commitService{
		entityRepository: entityRepository,
		validator:        validators.NewCommitRequestValidator(),
		logger:           logger,
	}
}

// Commit implements CommitService.
//
// Entries carrying key metadata (the Nigori type) are applied before all
// others: if a batch updates both the key bag and data encrypted under it,
// the key bag must win the race. Within each group the client's order is
// preserved.
//
// Returns:
//   - ErrNoEntriesProvided if the batch is empty.
//   - ErrTooManyEntries if the batch exceeds maxCommitBatchEntries.
//   - ErrInvalidDataProvided if any entry fails structural validation.
//   - Otherwise one result per entry, in the same order as req.Entries.
func (c *commitService) Commit(ctx context.Context, req models.CommitRequest) (models.CommitResponse, error) {
	log := logger.FromContext(ctx)

	if len(req.Entries) == 0 {
		return models.CommitResponse{}, ErrNoEntriesProvided
	}
	if len(req.Entries) > maxCommitBatchEntries {
		return models.CommitResponse{}, ErrTooManyEntries
	}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.CommitResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	results := make(map[string]models.CommitResult, len(req.Entries))

	for _, entry := range orderedForApply(req.Entries) {
		version, err := c.entityRepository.ApplyEntry(ctx, req.UserID, entry)
		switch {
		case err == nil:
			results[entry.ClientSideID] = models.CommitResult{
				ClientSideID: entry.ClientSideID,
				Status:       models.CommitStatusSuccess,
				Version:      version,
			}

		case errors.Is(err, store.ErrVersionConflict):
			log.Warn().
				Str("client_side_id", entry.ClientSideID).
				Int64("base_version", entry.BaseVersion).
				Msg("commit entry conflicted")
			results[entry.ClientSideID] = models.CommitResult{
				ClientSideID: entry.ClientSideID,
				Status:       models.CommitStatusConflict,
			}

		default:
			log.Err(err).
				Str("client_side_id", entry.ClientSideID).
				Msg("commit entry failed")
			results[entry.ClientSideID] = models.CommitResult{
				ClientSideID: entry.ClientSideID,
				Status:       models.CommitStatusTransientError,
			}
		}
	}

	// Results are reported in request order regardless of apply order.
	resp := models.CommitResponse{
		Results: make([]models.CommitResult, 0, len(req.Entries)),
		Length:  len(req.Entries),
	}
	for _, entry := range req.Entries {
		resp.Results = append(resp.Results, results[entry.ClientSideID])
	}

	return resp, nil
}

// orderedForApply returns entries with all Nigori entries moved to the front,
// keeping the relative order within each group.
func orderedForApply(entries []models.CommitEntry) []models.CommitEntry {
	ordered := make([]models.CommitEntry, 0, len(entries))
	for _, e := range entries {
		if e.Type == models.Nigori {
			ordered = append(ordered, e)
		}
	}
	if len(ordered) == 0 {
		return entries
	}
	for _, e := range entries {
		if e.Type != models.Nigori {
			ordered = append(ordered, e)
		}
	}
	return ordered
}
