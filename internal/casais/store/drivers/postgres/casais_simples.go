package postgres

import (
	"context"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
)

type casaisSimplesRepo struct{ db DBTX }

var _ store.CasaisSimples = (*casaisSimplesRepo)(nil)

func scanCasalSimple(row rowScanner) (domain.CasalSimple, error) {
	var c domain.CasalSimple
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Age, &c.IsDelete, &c.Date)
	return c, err
}

func (r *casaisSimplesRepo) CreateCasalSimple(ctx context.Context, c domain.CasalSimple) error {
	if c.UserID == "" {
		return store.ErrUnscoped
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO casais_simples (id, user_id, name, age, is_delete, date)
		 VALUES ($1, $2, $3, $4, FALSE, $5)`,
		c.ID, c.UserID, c.Name, c.Age, c.Date)
	return dbError(err)
}

func (r *casaisSimplesRepo) GetCasalSimple(ctx context.Context, ownerID, id string) (domain.CasalSimple, error) {
	if ownerID == "" {
		return domain.CasalSimple{}, store.ErrUnscoped
	}
	c, err := scanCasalSimple(r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, age, is_delete, date FROM casais_simples
		 WHERE id = $1 AND user_id = $2 AND is_delete = FALSE`, id, ownerID))
	if err != nil {
		return domain.CasalSimple{}, dbError(err)
	}
	return c, nil
}

func (r *casaisSimplesRepo) ListCasaisSimples(ctx context.Context, ownerID string, q store.ListQuery) ([]domain.CasalSimple, int, error) {
	if ownerID == "" {
		return nil, 0, store.ErrUnscoped
	}
	q = q.Normalize()
	pattern := store.LikePattern(q.Search)

	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM casais_simples
		 WHERE user_id = $1 AND is_delete = FALSE AND name ILIKE $2 ESCAPE '\'`,
		ownerID, pattern).Scan(&total)
	if err != nil {
		return nil, 0, dbError(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, age, is_delete, date FROM casais_simples
		 WHERE user_id = $1 AND is_delete = FALSE AND name ILIKE $2 ESCAPE '\'
		 ORDER BY id
		 LIMIT $3 OFFSET $4`,
		ownerID, pattern, q.PerPage, q.Offset())
	if err != nil {
		return nil, 0, dbError(err)
	}
	out, err := collect(rows, scanCasalSimple)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *casaisSimplesRepo) UpdateCasalSimple(ctx context.Context, c domain.CasalSimple) error {
	if c.UserID == "" {
		return store.ErrUnscoped
	}
	return affected(r.db.ExecContext(ctx,
		`UPDATE casais_simples SET name = $1, age = $2
		 WHERE id = $3 AND user_id = $4 AND is_delete = FALSE`,
		c.Name, c.Age, c.ID, c.UserID))
}

func (r *casaisSimplesRepo) SoftDeleteCasalSimple(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return store.ErrUnscoped
	}
	return affected(r.db.ExecContext(ctx,
		`UPDATE casais_simples SET is_delete = TRUE
		 WHERE id = $1 AND user_id = $2 AND is_delete = FALSE`, id, ownerID))
}
