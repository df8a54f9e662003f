package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"hearts/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	handRecordCollection = "hearts_hands"
	gameRecordCollection = "hearts_games"
)

// StorageRecorder persists hand and game outcomes as system-owned Nakama
// storage objects, keyed by match so a game's history can be listed later.
type StorageRecorder struct {
	nk runtime.NakamaModule
}

// NewStorageRecorder creates a new storage-backed game recorder.
func NewStorageRecorder(nk runtime.NakamaModule) *StorageRecorder {
	return &StorageRecorder{nk: nk}
}

// RecordHand writes one settled hand.
func (r *StorageRecorder) RecordHand(ctx context.Context, matchID string, record ports.HandRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal hand record: %w", err)
	}

	writes := []*runtime.StorageWrite{
		{
			Collection:      handRecordCollection,
			Key:             fmt.Sprintf("%s_hand_%d", matchID, record.HandNumber),
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}
	if _, err := r.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write hand record: %w", err)
	}
	return nil
}

// RecordGame writes the final outcome of a finished game.
func (r *StorageRecorder) RecordGame(ctx context.Context, matchID string, record ports.GameRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}

	writes := []*runtime.StorageWrite{
		{
			Collection:      gameRecordCollection,
			Key:             matchID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}
	if _, err := r.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write game record: %w", err)
	}
	return nil
}

var _ ports.GameRecorder = (*StorageRecorder)(nil)
