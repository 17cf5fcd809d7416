package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
)

const casalColumns = `id, user_id, name, description, niver_h, niver_m, tel, image, public_id, is_delete, date`

type casaisRepo struct{ db DBTX }

var _ store.Casais = (*casaisRepo)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCasal(row rowScanner) (domain.Casal, error) {
	var c domain.Casal
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Desc, &c.NiverH, &c.NiverM,
		&c.Tel, &c.Image, &c.PublicID, &c.IsDelete, &c.Date)
	return c, err
}

func (r *casaisRepo) CreateCasal(ctx context.Context, c domain.Casal) error {
	if c.UserID == "" {
		return store.ErrUnscoped
	}
	query :=
		`INSERT INTO casais (id, user_id, name, description, niver_h, niver_m, tel, image, public_id, is_delete, date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE, $10)`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Name, c.Desc, c.NiverH, c.NiverM,
		c.Tel, c.Image, c.PublicID, c.Date)
	return dbError(err)
}

func (r *casaisRepo) GetCasal(ctx context.Context, ownerID, id string) (domain.Casal, error) {
	if ownerID == "" {
		return domain.Casal{}, store.ErrUnscoped
	}
	query := `SELECT ` + casalColumns + ` FROM casais
		 WHERE id = $1 AND user_id = $2 AND is_delete = FALSE`

	c, err := scanCasal(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		return domain.Casal{}, dbError(err)
	}
	return c, nil
}

func (r *casaisRepo) ListCasais(ctx context.Context, ownerID string, q store.ListQuery) ([]domain.Casal, int, error) {
	if ownerID == "" {
		return nil, 0, store.ErrUnscoped
	}
	q = q.Normalize()
	pattern := store.LikePattern(q.Search)

	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM casais
		 WHERE user_id = $1 AND is_delete = FALSE AND name ILIKE $2 ESCAPE '\'`,
		ownerID, pattern).Scan(&total)
	if err != nil {
		return nil, 0, dbError(err)
	}

	query := `SELECT ` + casalColumns + ` FROM casais
		 WHERE user_id = $1 AND is_delete = FALSE AND name ILIKE $2 ESCAPE '\'
		 ORDER BY id
		 LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryContext(ctx, query, ownerID, pattern, q.PerPage, q.Offset())
	if err != nil {
		return nil, 0, dbError(err)
	}
	out, err := collect(rows, scanCasal)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *casaisRepo) UpdateCasal(ctx context.Context, c domain.Casal) error {
	if c.UserID == "" {
		return store.ErrUnscoped
	}
	query :=
		`UPDATE casais
		 SET name = $1, description = $2, niver_h = $3, niver_m = $4, tel = $5, image = $6, public_id = $7
		 WHERE id = $8 AND user_id = $9 AND is_delete = FALSE`

	return affected(r.db.ExecContext(ctx, query, c.Name, c.Desc, c.NiverH, c.NiverM, c.Tel,
		c.Image, c.PublicID, c.ID, c.UserID))
}

func (r *casaisRepo) SoftDeleteCasal(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return store.ErrUnscoped
	}
	return affected(r.db.ExecContext(ctx,
		`UPDATE casais SET is_delete = TRUE
		 WHERE id = $1 AND user_id = $2 AND is_delete = FALSE`, id, ownerID))
}

func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, dbError(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err)
	}
	return out, nil
}
