// Package app provides the core business service that implements the
// dependencies required by the HTTP API: board and card upkeep, reorder
// commits, episode capture, and the comparison and trajectory reads.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	repository "github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/compare"
	"github.com/okian/podium/internal/domain/episode"
	"github.com/okian/podium/internal/domain/gesture"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/rank"
	"github.com/okian/podium/internal/domain/trajectory"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

const defaultMaxCardsPerBoard = 500

// GestureTuning is the drag-and-drop tuning advertised to clients. Clients
// feed these values into their local gesture recognizers so every device
// resolves presses and drop targets the same way.
type GestureTuning struct {
	LongPressMS  int     `json:"long_press_ms"`
	MovementSlop float64 `json:"movement_slop"`
	SlotHeight   float64 `json:"slot_height"`
}

// Service implements the ranking use cases over the persistence
// collaborators. Writes are serialized by a single mutex: the model assumes
// one local writer per board, and this keeps read-modify-write sequences
// (load cards, move, save) atomic.
type Service struct {
	mu sync.Mutex

	boards    repository.BoardStore
	cards     repository.CardStore
	snapshots repository.SnapshotStore

	maxCardsPerBoard int
	gestureTuning    GestureTuning
	now              func() time.Time
	newID            func() string

	started bool
	log     logger.Logger
}

// New constructs a Service backed by in-memory stores unless options say
// otherwise.
func New(opts ...Option) *Service {
	mem := repository.NewMemStore()
	s := &Service{
		boards:           mem,
		cards:            mem,
		snapshots:        repository.NewMemSnapshotStore(),
		maxCardsPerBoard: defaultMaxCardsPerBoard,
		gestureTuning: GestureTuning{
			LongPressMS:  500,
			MovementSlop: 10,
			SlotHeight:   64,
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start marks the service ready. Kept for lifecycle symmetry with Stop.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return errors.New("service already started")
	}
	s.started = true
	if s.log != nil {
		s.log.Info(ctx, "service started")
	}
	return nil
}

// Stop marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// CreateBoard creates an empty board.
func (s *Service) CreateBoard(ctx context.Context, name string) (model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board := model.Board{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: s.now(),
	}
	if err := s.boards.CreateBoard(ctx, board); err != nil {
		return model.Board{}, fmt.Errorf("create board: %w", err)
	}
	s.updateGauges(ctx)
	return board, nil
}

// Boards lists all boards.
func (s *Service) Boards(ctx context.Context) ([]model.Board, error) {
	return s.boards.Boards(ctx)
}

// DeleteBoard removes a board, its cards and its snapshots.
func (s *Service) DeleteBoard(ctx context.Context, boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snaps, err := s.snapshots.SnapshotsByBoard(ctx, boardID)
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	if err := s.boards.DeleteBoard(ctx, boardID); err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	for _, snap := range snaps {
		if err := s.snapshots.DeleteSnapshot(ctx, snap.ID); err != nil {
			return fmt.Errorf("delete board snapshots: %w", err)
		}
	}
	s.updateGauges(ctx)
	return nil
}

// Cards returns a board's cards in rank order.
func (s *Service) Cards(ctx context.Context, boardID string) ([]model.Card, error) {
	return s.cards.CardsByBoard(ctx, boardID)
}

// AddCard appends a card at the bottom of the board.
func (s *Service) AddCard(ctx context.Context, boardID, name, thumbnailRef string) (model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards, err := s.cards.CardsByBoard(ctx, boardID)
	if err != nil {
		return model.Card{}, fmt.Errorf("add card: %w", err)
	}
	if len(cards) >= s.maxCardsPerBoard {
		return model.Card{}, fmt.Errorf("add card to %s: %w", boardID, ErrBoardFull)
	}
	card := model.Card{
		ID:           s.newID(),
		BoardID:      boardID,
		Name:         name,
		Rank:         len(cards) + 1,
		ThumbnailRef: thumbnailRef,
	}
	if err := s.cards.SaveCardsForBoard(ctx, boardID, append(cards, card)); err != nil {
		return model.Card{}, fmt.Errorf("add card: %w", err)
	}
	s.updateGauges(ctx)
	return card, nil
}

// RenameCard changes a card's display name. Historical snapshot entries are
// denormalized and keep the old name.
func (s *Service) RenameCard(ctx context.Context, boardID, cardID, name string) (model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards, err := s.cards.CardsByBoard(ctx, boardID)
	if err != nil {
		return model.Card{}, fmt.Errorf("rename card: %w", err)
	}
	for i := range cards {
		if cards[i].ID != cardID {
			continue
		}
		cards[i].Name = name
		if err := s.cards.SaveCardsForBoard(ctx, boardID, cards); err != nil {
			return model.Card{}, fmt.Errorf("rename card: %w", err)
		}
		return cards[i], nil
	}
	return model.Card{}, fmt.Errorf("card %s: %w", cardID, repository.ErrNotFound)
}

// DeleteCard removes a card and restores rank density for the remainder.
func (s *Service) DeleteCard(ctx context.Context, boardID, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards, err := s.cards.CardsByBoard(ctx, boardID)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	kept := make([]model.Card, 0, len(cards))
	found := false
	for _, c := range cards {
		if c.ID == cardID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return fmt.Errorf("card %s: %w", cardID, repository.ErrNotFound)
	}
	if err := s.cards.SaveCardsForBoard(ctx, boardID, rank.Normalize(kept)); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	s.updateGauges(ctx)
	return nil
}

// Reorder moves the card at from to to and persists the result. Persistence
// runs exactly once per changed move and never for a no-op.
func (s *Service) Reorder(ctx context.Context, boardID string, from, to int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards, err := s.cards.CardsByBoard(ctx, boardID)
	if err != nil {
		return false, fmt.Errorf("reorder: %w", err)
	}
	moved, changed, err := rank.Move(cards, from, to)
	if err != nil {
		metrics.RecordReorderRejected()
		return false, fmt.Errorf("reorder: %w", err)
	}
	if !changed {
		metrics.RecordReorderNoop()
		return false, nil
	}
	if err := s.cards.SaveCardsForBoard(ctx, boardID, moved); err != nil {
		return false, fmt.Errorf("reorder: %w", err)
	}
	metrics.RecordReorderCommit()
	if s.log != nil {
		s.log.Debug(ctx, "reorder committed",
			logger.String("board_id", boardID),
			logger.Int("from", from),
			logger.Int("to", to),
		)
	}
	return true, nil
}

// ReorderToOrder accepts a full desired ID order, bridges it to an index
// pair via the single-relocation scanner, and commits that move. An order
// that is not one contiguous relocation is rejected with ErrAmbiguousOrder.
func (s *Service) ReorderToOrder(ctx context.Context, boardID string, order []string) (bool, error) {
	cards, err := s.cards.CardsByBoard(ctx, boardID)
	if err != nil {
		return false, fmt.Errorf("reorder: %w", err)
	}
	before := make([]string, len(cards))
	for i, c := range cards {
		before[i] = c.ID
	}
	from, to, ok := gesture.MovedIndices(before, order)
	if !ok {
		if equalOrder(before, order) {
			metrics.RecordReorderNoop()
			return false, nil
		}
		metrics.RecordReorderRejected()
		return false, fmt.Errorf("reorder board %s: %w", boardID, ErrAmbiguousOrder)
	}
	return s.Reorder(ctx, boardID, from, to)
}

// CaptureEpisode freezes the board's current order into a snapshot with the
// store's next episode number.
func (s *Service) CaptureEpisode(ctx context.Context, boardID, label, notes string) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards, err := s.cards.CardsByBoard(ctx, boardID)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("capture episode: %w", err)
	}
	number, err := s.snapshots.NextEpisodeNumber(ctx, boardID)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("capture episode: %w", err)
	}
	snap := episode.Capture(boardID, cards,
		episode.WithEpisodeNumber(number),
		episode.WithLabel(label),
		episode.WithNotes(notes),
		episode.WithClock(s.now),
		episode.WithIDFunc(s.newID),
	)
	if err := s.snapshots.SaveSnapshot(ctx, snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("capture episode: %w", err)
	}
	metrics.RecordEpisodeCaptured()
	if s.log != nil {
		s.log.Info(ctx, "episode captured",
			logger.String("board_id", boardID),
			logger.Int("episode", snap.EpisodeNumber),
			logger.Int("cards", len(snap.Rankings)),
		)
	}
	return snap, nil
}

// Episodes returns the board's snapshots ordered by episode number.
func (s *Service) Episodes(ctx context.Context, boardID string) ([]model.Snapshot, error) {
	return s.snapshots.SnapshotsByBoard(ctx, boardID)
}

// UpdateEpisodeMeta edits a snapshot's label and notes.
func (s *Service) UpdateEpisodeMeta(ctx context.Context, snapshotID, label, notes string) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.snapshots.UpdateSnapshotMeta(ctx, snapshotID, label, notes)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("update episode: %w", err)
	}
	return snap, nil
}

// DeleteEpisode removes a snapshot permanently.
func (s *Service) DeleteEpisode(ctx context.Context, snapshotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.snapshots.DeleteSnapshot(ctx, snapshotID); err != nil {
		return fmt.Errorf("delete episode: %w", err)
	}
	metrics.RecordEpisodeDeleted()
	return nil
}

// Movement compares the board's live order against the baseline episode.
// baselineEpisode <= 0 means no history: every card reports as a debut.
func (s *Service) Movement(ctx context.Context, boardID string, baselineEpisode int) ([]compare.Result, error) {
	cards, err := s.cards.CardsByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("movement: %w", err)
	}
	baseline, err := s.episodeByNumber(ctx, boardID, baselineEpisode)
	if err != nil {
		return nil, fmt.Errorf("movement: %w", err)
	}
	metrics.RecordComparison()
	return compare.Compute(baseline, cards), nil
}

// MovementBetween compares two episodes of the same board.
func (s *Service) MovementBetween(ctx context.Context, boardID string, baselineEpisode, targetEpisode int) ([]compare.Result, error) {
	baseline, err := s.episodeByNumber(ctx, boardID, baselineEpisode)
	if err != nil {
		return nil, fmt.Errorf("movement: %w", err)
	}
	target, err := s.episodeByNumber(ctx, boardID, targetEpisode)
	if err != nil {
		return nil, fmt.Errorf("movement: %w", err)
	}
	if target == nil {
		return nil, fmt.Errorf("movement: target episode %d: %w", targetEpisode, repository.ErrNotFound)
	}
	metrics.RecordComparison()
	return compare.ComputeBetween(baseline, *target), nil
}

// Trajectories returns the rank history of every live card on the board.
func (s *Service) Trajectories(ctx context.Context, boardID string) ([]trajectory.CardTrajectory, error) {
	cards, err := s.cards.CardsByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("trajectories: %w", err)
	}
	snaps, err := s.snapshots.SnapshotsByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("trajectories: %w", err)
	}
	metrics.RecordTrajectoryBuild()
	return trajectory.BuildAll(cards, snaps), nil
}

// Trajectory returns one live card's rank history.
func (s *Service) Trajectory(ctx context.Context, boardID, cardID string) (trajectory.CardTrajectory, error) {
	cards, err := s.cards.CardsByBoard(ctx, boardID)
	if err != nil {
		return trajectory.CardTrajectory{}, fmt.Errorf("trajectory: %w", err)
	}
	for _, c := range cards {
		if c.ID != cardID {
			continue
		}
		snaps, err := s.snapshots.SnapshotsByBoard(ctx, boardID)
		if err != nil {
			return trajectory.CardTrajectory{}, fmt.Errorf("trajectory: %w", err)
		}
		metrics.RecordTrajectoryBuild()
		return trajectory.Build(c.ID, c.Name, snaps), nil
	}
	return trajectory.CardTrajectory{}, fmt.Errorf("card %s: %w", cardID, repository.ErrNotFound)
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	stats := map[string]interface{}{}
	if counter, ok := s.boards.(interface {
		Counts(context.Context) (int, int)
	}); ok {
		boards, cards := counter.Counts(ctx)
		stats["boards"] = boards
		stats["cards"] = cards
	}
	stats["gesture"] = s.gestureTuning
	return stats
}

// episodeByNumber resolves an episode number to a snapshot; number <= 0
// means "no baseline" and returns nil without error.
func (s *Service) episodeByNumber(ctx context.Context, boardID string, number int) (*model.Snapshot, error) {
	if number <= 0 {
		return nil, nil
	}
	snaps, err := s.snapshots.SnapshotsByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	for i := range snaps {
		if snaps[i].EpisodeNumber == number {
			return &snaps[i], nil
		}
	}
	return nil, fmt.Errorf("episode %d of board %s: %w", number, boardID, repository.ErrNotFound)
}

func (s *Service) updateGauges(ctx context.Context) {
	if counter, ok := s.boards.(interface {
		Counts(context.Context) (int, int)
	}); ok {
		boards, cards := counter.Counts(ctx)
		metrics.UpdateBoardCount(boards)
		metrics.UpdateCardCount(cards)
	}
}

func equalOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
