// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package service

import (
	"context"

	"github.com/mkarev/vault-sync/internal/commit"
	"github.com/mkarev/vault-sync/internal/store"
	"github.com/mkarev/vault-sync/models"
)

// pendingChangeContributor feeds queued local changes of one data type to the
// batch scheduler. The contributor snapshots its queue slice up front because
// GetContribution must not block; the snapshot is drained across repeated
// calls within one gathering pass.
type pendingChangeContributor struct {
	dataType models.DataType
	entries  []models.CommitEntry
}

// newPendingChangeContributor loads up to limit queued changes of dataType for
// userID and returns a contributor serving them. Returns an error if the
// queue cannot be read.
func newPendingChangeContributor(ctx context.Context, pending store.PendingChangeRepository, userID int64, dataType models.DataType, limit int) (*pendingChangeContributor, error) {
	entries, err := pending.GetPending(ctx, userID, dataType, limit)
	if err != nil {
		return nil, err
	}

	return &pendingChangeContributor{dataType: dataType, entries: entries}, nil
}

// GetContribution implements commit.Contributor.
func (c *pendingChangeContributor) GetContribution(maxEntries int) *commit.Contribution {
	if len(c.entries) == 0 || maxEntries <= 0 {
		return nil
	}

	n := maxEntries
	if n > len(c.entries) {
		n = len(c.entries)
	}

	taken := c.entries[:n]
	c.entries = c.entries[n:]

	return &commit.Contribution{Type: c.dataType, Entries: taken}
}
