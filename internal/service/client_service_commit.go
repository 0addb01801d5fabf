// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package service

import (
	"context"
	"fmt"

	"github.com/mkarev/vault-sync/internal/adapter"
	"github.com/mkarev/vault-sync/internal/commit"
	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/store"
	"github.com/mkarev/vault-sync/models"
)

// clientCommitService drains the pending-change queue in bounded batches. One
// commit cycle may send several batches; each batch is gathered by a fresh
// scheduler so phase ordering (key metadata first, then priority types, then
// the rest) holds within every request.
type clientCommitService struct {
	pending    store.PendingChangeRepository
	adapter    adapter.ServerAdapter
	maxEntries int
	logger     *logger.Logger
}

// NewClientCommitService constructs a ClientCommitService. maxEntries caps a
// single commit request; values below one fall back to the default batch size.
func NewClientCommitService(pending store.PendingChangeRepository, serverAdapter adapter.ServerAdapter, maxEntries int, logger *logger.Logger) ClientCommitService {
	if maxEntries < 1 {
		maxEntries = 25
	}
	return &clientCommitService{
		pending:    pending,
		adapter:    serverAdapter,
		maxEntries: maxEntries,
		logger:     logger,
	}
}

// RunCommitCycle implements ClientCommitService.
func (s *clientCommitService) RunCommitCycle(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContext(ctx)

	committed := 0
	for {
		batch, err := s.gatherBatch(ctx, userID)
		if err != nil {
			return committed, err
		}
		if batch.Empty() {
			return committed, nil
		}

		req := models.CommitRequest{
			UserID:  userID,
			Entries: batch.Entries(),
		}

		resp, err := s.adapter.Commit(ctx, req)
		if err != nil {
			return committed, fmt.Errorf("commit batch: %w", mapAdapterError(err))
		}

		if err := s.pending.MarkCommitted(ctx, userID, resp.Results...); err != nil {
			return committed, fmt.Errorf("mark committed: %w", err)
		}

		succeeded := 0
		for _, result := range resp.Results {
			if result.Status == models.CommitStatusSuccess {
				succeeded++
			}
		}
		committed += succeeded

		log.Debug().
			Int("batch_size", len(req.Entries)).
			Int("succeeded", succeeded).
			Msg("commit batch finished")

		// Entries that conflicted or failed stay queued. Without forward
		// progress the same batch would be gathered again, so stop here and
		// let the next cycle retry.
		if succeeded == 0 {
			return committed, nil
		}
	}
}

// gatherBatch builds a fresh scheduler over the data types that currently
// have queued changes and gathers one capped batch from it.
func (s *clientCommitService) gatherBatch(ctx context.Context, userID int64) (*commit.ContributionMap, error) {
	types, err := s.pending.PendingTypes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("pending types: %w", err)
	}
	if types.Empty() {
		return commit.NewContributionMap(), nil
	}

	// Key metadata is always eligible: the scheduler checks it first even
	// when nothing is queued for it.
	eligible := types.Add(models.Nigori)

	registry := make(commit.ContributorRegistry, eligible.Len())
	for _, t := range eligible.Slice() {
		contributor, err := newPendingChangeContributor(ctx, s.pending, userID, t, s.maxEntries)
		if err != nil {
			return nil, fmt.Errorf("load pending changes for %s: %w", t, err)
		}
		registry[t] = contributor
	}

	scheduler := commit.NewBatchScheduler(eligible, registry, s.logger)
	return scheduler.GatherContributions(s.maxEntries), nil
}
