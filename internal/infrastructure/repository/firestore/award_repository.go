package firestore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/award"
)

// AwardRepository stores one document per month, keyed by "YYYY-MM".
type AwardRepository struct {
	store *Store
}

func NewAwardRepository(store *Store) *AwardRepository {
	return &AwardRepository{store: store}
}

func (r *AwardRepository) GetByYearMonth(ctx context.Context, yearMonth string) (award.MonthlyAward, bool, error) {
	var (
		out    award.MonthlyAward
		exists bool
	)
	err := r.store.do(ctx, "get award", func(ctx context.Context) error {
		snap, err := r.store.client.Collection(awardsCollection).Doc(yearMonth).Get(ctx)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}

		var doc awardDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("%w: %v", errMalformedDocument, err)
		}
		out, exists = doc.toDomain(snap.Ref.ID), true
		return nil
	})
	if err != nil {
		return award.MonthlyAward{}, false, err
	}
	return out, exists, nil
}

func (r *AwardRepository) Save(ctx context.Context, item award.MonthlyAward) error {
	return r.store.do(ctx, "save award", func(ctx context.Context) error {
		_, err := r.store.client.Collection(awardsCollection).Doc(item.YearMonth).Set(ctx, awardDocFromDomain(item))
		return err
	})
}
