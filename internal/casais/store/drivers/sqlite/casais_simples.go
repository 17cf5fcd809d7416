package sqlite

import (
	"context"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/internal/casais/store/drivers/sqlite/gen"
)

type casaisSimplesRepo struct{ q *gen.Queries }

var _ store.CasaisSimples = (*casaisSimplesRepo)(nil)

func (r *casaisSimplesRepo) CreateCasalSimple(ctx context.Context, c domain.CasalSimple) error {
	if c.UserID == "" {
		return store.ErrUnscoped
	}
	err := r.q.CreateCasalSimple(ctx, gen.CreateCasalSimpleParams{
		ID:     c.ID,
		UserID: c.UserID,
		Name:   c.Name,
		Age:    int64(c.Age),
		Date:   c.Date,
	})
	return mapConflict(err)
}

func (r *casaisSimplesRepo) GetCasalSimple(ctx context.Context, ownerID, id string) (domain.CasalSimple, error) {
	if ownerID == "" {
		return domain.CasalSimple{}, store.ErrUnscoped
	}
	row, err := r.q.GetCasalSimple(ctx, gen.GetCasalSimpleParams{ID: id, UserID: ownerID})
	if err != nil {
		return domain.CasalSimple{}, mapNotFound(err)
	}
	return mapCasalSimple(row), nil
}

func (r *casaisSimplesRepo) ListCasaisSimples(ctx context.Context, ownerID string, q store.ListQuery) ([]domain.CasalSimple, int, error) {
	if ownerID == "" {
		return nil, 0, store.ErrUnscoped
	}
	q = q.Normalize()
	pattern := store.LikePattern(q.Search)

	total, err := r.q.CountCasaisSimples(ctx, gen.CountCasaisSimplesParams{UserID: ownerID, Pattern: pattern})
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.q.ListCasaisSimples(ctx, gen.ListCasaisSimplesParams{
		UserID:  ownerID,
		Pattern: pattern,
		Limit:   int64(q.PerPage),
		Offset:  int64(q.Offset()),
	})
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.CasalSimple, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapCasalSimple(row))
	}
	return out, int(total), nil
}

func (r *casaisSimplesRepo) UpdateCasalSimple(ctx context.Context, c domain.CasalSimple) error {
	if c.UserID == "" {
		return store.ErrUnscoped
	}
	return requireRow(r.q.UpdateCasalSimple(ctx, gen.UpdateCasalSimpleParams{
		Name:   c.Name,
		Age:    int64(c.Age),
		ID:     c.ID,
		UserID: c.UserID,
	}))
}

func (r *casaisSimplesRepo) SoftDeleteCasalSimple(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return store.ErrUnscoped
	}
	return requireRow(r.q.SoftDeleteCasalSimple(ctx, gen.SoftDeleteCasalSimpleParams{ID: id, UserID: ownerID}))
}
