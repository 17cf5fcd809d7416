package sqlite

import (
	"context"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/internal/casais/store/drivers/sqlite/gen"
)

type casaisRepo struct{ q *gen.Queries }

var _ store.Casais = (*casaisRepo)(nil)

func (r *casaisRepo) CreateCasal(ctx context.Context, c domain.Casal) error {
	if c.UserID == "" {
		return store.ErrUnscoped
	}
	err := r.q.CreateCasal(ctx, gen.CreateCasalParams{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		Description: c.Desc,
		NiverH:      c.NiverH,
		NiverM:      c.NiverM,
		Tel:         c.Tel,
		Image:       c.Image,
		PublicID:    c.PublicID,
		Date:        c.Date,
	})
	return mapConflict(err)
}

func (r *casaisRepo) GetCasal(ctx context.Context, ownerID, id string) (domain.Casal, error) {
	if ownerID == "" {
		return domain.Casal{}, store.ErrUnscoped
	}
	row, err := r.q.GetCasal(ctx, gen.GetCasalParams{ID: id, UserID: ownerID})
	if err != nil {
		return domain.Casal{}, mapNotFound(err)
	}
	return mapCasal(row), nil
}

func (r *casaisRepo) ListCasais(ctx context.Context, ownerID string, q store.ListQuery) ([]domain.Casal, int, error) {
	if ownerID == "" {
		return nil, 0, store.ErrUnscoped
	}
	q = q.Normalize()
	pattern := store.LikePattern(q.Search)

	total, err := r.q.CountCasais(ctx, gen.CountCasaisParams{UserID: ownerID, Pattern: pattern})
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.q.ListCasais(ctx, gen.ListCasaisParams{
		UserID:  ownerID,
		Pattern: pattern,
		Limit:   int64(q.PerPage),
		Offset:  int64(q.Offset()),
	})
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Casal, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapCasal(row))
	}
	return out, int(total), nil
}

func (r *casaisRepo) UpdateCasal(ctx context.Context, c domain.Casal) error {
	if c.UserID == "" {
		return store.ErrUnscoped
	}
	return requireRow(r.q.UpdateCasal(ctx, gen.UpdateCasalParams{
		Name:        c.Name,
		Description: c.Desc,
		NiverH:      c.NiverH,
		NiverM:      c.NiverM,
		Tel:         c.Tel,
		Image:       c.Image,
		PublicID:    c.PublicID,
		ID:          c.ID,
		UserID:      c.UserID,
	}))
}

func (r *casaisRepo) SoftDeleteCasal(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return store.ErrUnscoped
	}
	return requireRow(r.q.SoftDeleteCasal(ctx, gen.SoftDeleteCasalParams{ID: id, UserID: ownerID}))
}
