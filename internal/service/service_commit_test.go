// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/mock"
	"github.com/mkarev/vault-sync/internal/store"
	"github.com/mkarev/vault-sync/models"
)

func newTestServerCommitSvc(t *testing.T, ctrl *gomock.Controller) (CommitService, *mock.MockEntityRepository) {
	t.Helper()
	mockRepo := mock.NewMockEntityRepository(ctrl)
	return NewCommitService(mockRepo, logger.NewLogger("test")), mockRepo
}

func TestCommit_EmptyBatchRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestServerCommitSvc(t, ctrl)

	_, err := svc.Commit(context.Background(), models.CommitRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrNoEntriesProvided)
}

func TestCommit_OversizedBatchRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestServerCommitSvc(t, ctrl)

	entries := make([]models.CommitEntry, maxCommitBatchEntries+1)
	for i := range entries {
		entries[i] = models.CommitEntry{ClientSideID: "id", Type: models.Bookmarks}
	}

	_, err := svc.Commit(context.Background(), models.CommitRequest{UserID: 1, Entries: entries})
	assert.ErrorIs(t, err, ErrTooManyEntries)
}

func TestCommit_PerEntryResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestServerCommitSvc(t, ctrl)
	ctx := context.Background()

	req := models.CommitRequest{
		UserID: 1,
		Entries: []models.CommitEntry{
			{ClientSideID: "id-ok", Type: models.Bookmarks},
			{ClientSideID: "id-conflict", Type: models.Bookmarks, BaseVersion: 2},
			{ClientSideID: "id-broken", Type: models.Passwords},
		},
	}

	mockRepo.EXPECT().ApplyEntry(ctx, int64(1), req.Entries[0]).Return(int64(1), nil)
	mockRepo.EXPECT().ApplyEntry(ctx, int64(1), req.Entries[1]).Return(int64(0), store.ErrVersionConflict)
	mockRepo.EXPECT().ApplyEntry(ctx, int64(1), req.Entries[2]).Return(int64(0), errors.New("connection reset"))

	resp, err := svc.Commit(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, 3, resp.Length)

	assert.Equal(t, models.CommitStatusSuccess, resp.Results[0].Status)
	assert.Equal(t, int64(1), resp.Results[0].Version)
	assert.Equal(t, models.CommitStatusConflict, resp.Results[1].Status)
	assert.Equal(t, models.CommitStatusTransientError, resp.Results[2].Status)
}

func TestCommit_KeyMetadataAppliedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestServerCommitSvc(t, ctrl)
	ctx := context.Background()

	req := models.CommitRequest{
		UserID: 1,
		Entries: []models.CommitEntry{
			{ClientSideID: "id-bookmark", Type: models.Bookmarks},
			{ClientSideID: "id-keybag", Type: models.Nigori},
		},
	}

	var applied []string
	mockRepo.EXPECT().
		ApplyEntry(ctx, int64(1), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, _ int64, entry models.CommitEntry) (int64, error) {
			applied = append(applied, entry.ClientSideID)
			return 1, nil
		})

	resp, err := svc.Commit(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"id-keybag", "id-bookmark"}, applied)

	// results keep the request order
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "id-bookmark", resp.Results[0].ClientSideID)
	assert.Equal(t, "id-keybag", resp.Results[1].ClientSideID)
}

func TestCommit_MalformedEntryRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestServerCommitSvc(t, ctrl)

	req := models.CommitRequest{
		UserID: 1,
		Entries: []models.CommitEntry{
			{ClientSideID: "", Type: models.Bookmarks},
		},
	}

	_, err := svc.Commit(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
