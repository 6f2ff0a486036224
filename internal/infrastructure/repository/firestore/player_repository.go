package firestore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

// List skips documents that do not decode into a valid player.
func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	var out []player.Player
	err := r.store.do(ctx, "list players", func(ctx context.Context) error {
		docs, err := r.store.client.Collection(playersCollection).Documents(ctx).GetAll()
		if err != nil {
			return err
		}

		out = make([]player.Player, 0, len(docs))
		for _, snap := range docs {
			var doc playerDoc
			if err := snap.DataTo(&doc); err != nil {
				r.store.logger.WarnContext(ctx, "skipping undecodable player document", "doc_id", snap.Ref.ID, "error", err)
				continue
			}
			p, err := doc.toDomain(snap.Ref.ID)
			if err != nil {
				r.store.logger.WarnContext(ctx, "skipping invalid player document", "doc_id", snap.Ref.ID, "error", err)
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	var (
		out    player.Player
		exists bool
	)
	err := r.store.do(ctx, "get player", func(ctx context.Context) error {
		snap, err := r.store.client.Collection(playersCollection).Doc(playerID).Get(ctx)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}

		var doc playerDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("%w: %v", errMalformedDocument, err)
		}
		p, err := doc.toDomain(snap.Ref.ID)
		if err != nil {
			return err
		}
		out, exists = p, true
		return nil
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return out, exists, nil
}

// Upsert writes players keyed by ID.
func (r *PlayerRepository) Upsert(ctx context.Context, players []player.Player) error {
	return r.store.do(ctx, "upsert players", func(ctx context.Context) error {
		col := r.store.client.Collection(playersCollection)
		for _, p := range players {
			if err := p.Validate(); err != nil {
				return fmt.Errorf("%w: %v", errMalformedDocument, err)
			}
			if _, err := col.Doc(p.ID).Set(ctx, playerDocFromDomain(p)); err != nil {
				return err
			}
		}
		return nil
	})
}
