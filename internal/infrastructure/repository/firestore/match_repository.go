package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/riskibarqy/club-stats/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

// List returns matches ordered by date. Undecodable documents are skipped.
func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	var out []match.Match
	err := r.store.do(ctx, "list matches", func(ctx context.Context) error {
		iter := r.store.client.Collection(matchesCollection).OrderBy("date", fs.Asc).Documents(ctx)
		defer iter.Stop()

		out = make([]match.Match, 0)
		for {
			snap, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return err
			}

			var doc matchDoc
			if err := snap.DataTo(&doc); err != nil {
				r.store.logger.WarnContext(ctx, "skipping undecodable match document", "doc_id", snap.Ref.ID, "error", err)
				continue
			}
			m, err := doc.toDomain(snap.Ref.ID)
			if err != nil {
				r.store.logger.WarnContext(ctx, "skipping invalid match document", "doc_id", snap.Ref.ID, "error", err)
				continue
			}
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes matches keyed by ID.
func (r *MatchRepository) Upsert(ctx context.Context, matches []match.Match) error {
	return r.store.do(ctx, "upsert matches", func(ctx context.Context) error {
		col := r.store.client.Collection(matchesCollection)
		for _, m := range matches {
			if _, err := col.Doc(m.ID).Set(ctx, matchDocFromDomain(m)); err != nil {
				return err
			}
		}
		return nil
	})
}
