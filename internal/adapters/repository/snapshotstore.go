package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/okian/podium/internal/domain/model"
)

// MemSnapshotStore is an in-memory SnapshotStore. Rankings are copied on
// write and on read so a stored snapshot can never be mutated through a
// caller's slice.
type MemSnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]model.Snapshot
}

var _ SnapshotStore = (*MemSnapshotStore)(nil)

// NewMemSnapshotStore creates an empty in-memory snapshot store.
func NewMemSnapshotStore() *MemSnapshotStore {
	return &MemSnapshotStore{snapshots: make(map[string]model.Snapshot)}
}

// SnapshotsByBoard returns the board's snapshots ordered by episode number.
func (s *MemSnapshotStore) SnapshotsByBoard(_ context.Context, boardID string) ([]model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Snapshot, 0)
	for _, snap := range s.snapshots {
		if snap.BoardID == boardID {
			out = append(out, copySnapshot(snap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EpisodeNumber < out[j].EpisodeNumber })
	return out, nil
}

// Snapshot returns one snapshot.
func (s *MemSnapshotStore) Snapshot(_ context.Context, id string) (model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[id]
	if !ok {
		return model.Snapshot{}, fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
	}
	return copySnapshot(snap), nil
}

// SaveSnapshot stores a new snapshot. Existing snapshots are never
// overwritten.
func (s *MemSnapshotStore) SaveSnapshot(_ context.Context, snap model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.snapshots[snap.ID]; exists {
		return fmt.Errorf("snapshot %s: %w", snap.ID, ErrDuplicateID)
	}
	s.snapshots[snap.ID] = copySnapshot(snap)
	return nil
}

// UpdateSnapshotMeta edits label and notes; everything else is immutable.
func (s *MemSnapshotStore) UpdateSnapshotMeta(_ context.Context, id, label, notes string) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snapshots[id]
	if !ok {
		return model.Snapshot{}, fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
	}
	snap.Label = label
	snap.Notes = notes
	s.snapshots[id] = snap
	return copySnapshot(snap), nil
}

// DeleteSnapshot removes a snapshot for good.
func (s *MemSnapshotStore) DeleteSnapshot(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.snapshots[id]; !ok {
		return fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
	}
	delete(s.snapshots, id)
	return nil
}

// NextEpisodeNumber returns max(existing)+1 per board, or 1 with no history.
func (s *MemSnapshotStore) NextEpisodeNumber(_ context.Context, boardID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for _, snap := range s.snapshots {
		if snap.BoardID == boardID && snap.EpisodeNumber > max {
			max = snap.EpisodeNumber
		}
	}
	return max + 1, nil
}

func copySnapshot(snap model.Snapshot) model.Snapshot {
	rankings := make([]model.RankingEntry, len(snap.Rankings))
	copy(rankings, snap.Rankings)
	snap.Rankings = rankings
	return snap
}
