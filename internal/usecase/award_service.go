package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/award"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/standings"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
	"github.com/riskibarqy/club-stats/internal/platform/id"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

type AwardConfig struct {
	ShortlistSize int
	SlotCount     int
	MaxSlots      int
	Weights       standings.AwardWeights
}

func DefaultAwardConfig() AwardConfig {
	return AwardConfig{
		ShortlistSize: 3,
		SlotCount:     3,
		MaxSlots:      5,
		Weights:       standings.DefaultAwardWeights(),
	}
}

type AwardService struct {
	matchRepo match.Repository
	awardRepo award.Repository
	idGen     id.Generator
	years     stats.Years
	cfg       AwardConfig
	logger    *logging.Logger
	now       func() time.Time

	// mu serializes read-modify-write cycles on slot boards.
	mu sync.Mutex
}

func NewAwardService(
	matchRepo match.Repository,
	awardRepo award.Repository,
	idGen id.Generator,
	years stats.Years,
	cfg AwardConfig,
	logger *logging.Logger,
) *AwardService {
	defaults := DefaultAwardConfig()
	if cfg.ShortlistSize < 1 {
		cfg.ShortlistSize = defaults.ShortlistSize
	}
	if cfg.SlotCount < 1 {
		cfg.SlotCount = defaults.SlotCount
	}
	if cfg.MaxSlots < cfg.SlotCount {
		cfg.MaxSlots = cfg.SlotCount
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AwardService{
		matchRepo: matchRepo,
		awardRepo: awardRepo,
		idGen:     idGen,
		years:     years,
		cfg:       cfg,
		logger:    logger.Named("usecase.award"),
		now:       time.Now,
	}
}

// Candidates scores the month's players and returns the top n plus anyone
// tied with the last of them. n <= 0 uses the configured shortlist size.
func (s *AwardService) Candidates(ctx context.Context, yearMonth string, n int) ([]standings.AwardCandidate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.Candidates")
	defer span.End()

	yearMonth, err := s.validateMonth(yearMonth)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = s.cfg.ShortlistSize
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, unavailable("list matches", err)
	}

	agg := standings.Aggregate(matches, standings.AggregateFilter{Years: s.years, YearMonth: yearMonth})
	logSkipped(ctx, s.logger, agg.Skipped)

	scored := standings.ScoreCandidates(agg, s.cfg.Weights)
	return standings.ShortlistCandidates(scored, n), nil
}

// Get returns the month's award. A month nobody has edited reads as an
// empty board.
func (s *AwardService) Get(ctx context.Context, yearMonth string) (award.MonthlyAward, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.Get")
	defer span.End()

	yearMonth, err := s.validateMonth(yearMonth)
	if err != nil {
		return award.MonthlyAward{}, err
	}
	return s.load(ctx, yearMonth)
}

// Assign puts name into the first empty slot and returns the saved award and
// the slot index used.
func (s *AwardService) Assign(ctx context.Context, yearMonth, name string) (award.MonthlyAward, int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.Assign")
	defer span.End()

	return s.edit(ctx, yearMonth, func(b standings.SlotBoard) (standings.SlotBoard, int, error) {
		return b.AssignFirstEmpty(name)
	})
}

// AppendSlot grows the board by one slot holding name, up to the slot cap.
func (s *AwardService) AppendSlot(ctx context.Context, yearMonth, name string) (award.MonthlyAward, int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.AppendSlot")
	defer span.End()

	return s.edit(ctx, yearMonth, func(b standings.SlotBoard) (standings.SlotBoard, int, error) {
		return b.AppendSlot(name)
	})
}

func (s *AwardService) ClearSlot(ctx context.Context, yearMonth string, index int) (award.MonthlyAward, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.ClearSlot")
	defer span.End()

	item, _, err := s.edit(ctx, yearMonth, func(b standings.SlotBoard) (standings.SlotBoard, int, error) {
		next, err := b.Clear(index)
		return next, index, err
	})
	return item, err
}

func (s *AwardService) edit(
	ctx context.Context,
	yearMonth string,
	apply func(standings.SlotBoard) (standings.SlotBoard, int, error),
) (award.MonthlyAward, int, error) {
	yearMonth, err := s.validateMonth(yearMonth)
	if err != nil {
		return award.MonthlyAward{}, -1, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, yearMonth)
	if err != nil {
		return award.MonthlyAward{}, -1, err
	}

	board, index, err := apply(current.Board)
	if err != nil {
		return award.MonthlyAward{}, -1, slotError(err)
	}

	if current.ID == "" {
		newID, err := s.idGen.NewID()
		if err != nil {
			return award.MonthlyAward{}, -1, fmt.Errorf("generate award id: %w", err)
		}
		current.ID = newID
	}
	current.Board = board
	current.UpdatedAt = s.now().UTC()

	if err := s.awardRepo.Save(ctx, current); err != nil {
		return award.MonthlyAward{}, -1, unavailable("save award", err)
	}

	s.logger.InfoContext(ctx, "award slots updated",
		"year_month", yearMonth,
		"slot", index,
		"occupied", board.Occupied(),
	)
	return current, index, nil
}

func (s *AwardService) load(ctx context.Context, yearMonth string) (award.MonthlyAward, error) {
	item, exists, err := s.awardRepo.GetByYearMonth(ctx, yearMonth)
	if err != nil {
		return award.MonthlyAward{}, unavailable("get award", err)
	}
	if !exists {
		return award.MonthlyAward{
			YearMonth: yearMonth,
			Board:     standings.NewSlotBoard(s.cfg.SlotCount, s.cfg.MaxSlots),
		}, nil
	}
	return item, nil
}

func (s *AwardService) validateMonth(yearMonth string) (string, error) {
	yearMonth = strings.TrimSpace(yearMonth)
	if err := award.ValidateYearMonth(yearMonth); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !s.years.Contains(yearMonth[:4]) {
		return "", fmt.Errorf("%w: year %s is not supported", ErrInvalidInput, yearMonth[:4])
	}
	return yearMonth, nil
}

func slotError(err error) error {
	switch {
	case errors.Is(err, standings.ErrSlotBoardFull),
		errors.Is(err, standings.ErrDuplicateSlotEntry),
		errors.Is(err, standings.ErrSlotOutOfRange),
		errors.Is(err, standings.ErrInvalidSlotEntry):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
