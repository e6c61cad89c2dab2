package app

import (
	"time"

	repository "github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBoardStore replaces the board store.
func WithBoardStore(store repository.BoardStore) Option {
	return func(s *Service) {
		if store != nil {
			s.boards = store
		}
	}
}

// WithCardStore replaces the card store.
func WithCardStore(store repository.CardStore) Option {
	return func(s *Service) {
		if store != nil {
			s.cards = store
		}
	}
}

// WithSnapshotStore replaces the snapshot store.
func WithSnapshotStore(store repository.SnapshotStore) Option {
	return func(s *Service) {
		if store != nil {
			s.snapshots = store
		}
	}
}

// WithMaxCardsPerBoard caps how many cards a board may hold.
func WithMaxCardsPerBoard(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxCardsPerBoard = n
		}
	}
}

// WithGestureTuning sets the drag-and-drop tuning advertised to clients.
func WithGestureTuning(t GestureTuning) Option {
	return func(s *Service) {
		if t.LongPressMS >= 0 && t.SlotHeight > 0 {
			s.gestureTuning = t
		}
	}
}

// WithClock sets the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDFunc sets the ID generator. Used by tests.
func WithIDFunc(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}
