package postgres

import (
	"context"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
)

type eventosRepo struct{ db DBTX }

var _ store.Eventos = (*eventosRepo)(nil)

func scanEvento(row rowScanner) (domain.Evento, error) {
	var e domain.Evento
	err := row.Scan(&e.ID, &e.Titulo, &e.Descricao, &e.Data, &e.CriadoPor, &e.IsDelete, &e.CreatedAt)
	return e, err
}

func (r *eventosRepo) CreateEvento(ctx context.Context, e domain.Evento) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO eventos (id, titulo, descricao, data, criado_por, is_delete, created_at)
		 VALUES ($1, $2, $3, $4, $5, FALSE, $6)`,
		e.ID, e.Titulo, e.Descricao, e.Data, e.CriadoPor, e.CreatedAt)
	return dbError(err)
}

func (r *eventosRepo) GetEvento(ctx context.Context, id string) (domain.Evento, error) {
	e, err := scanEvento(r.db.QueryRowContext(ctx,
		`SELECT id, titulo, descricao, data, criado_por, is_delete, created_at FROM eventos
		 WHERE id = $1 AND is_delete = FALSE`, id))
	if err != nil {
		return domain.Evento{}, dbError(err)
	}
	return e, nil
}

func (r *eventosRepo) ListEventos(ctx context.Context, q store.ListQuery) ([]domain.Evento, int, error) {
	q = q.Normalize()
	pattern := store.LikePattern(q.Search)

	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM eventos
		 WHERE is_delete = FALSE AND titulo ILIKE $1 ESCAPE '\'`, pattern).Scan(&total)
	if err != nil {
		return nil, 0, dbError(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, titulo, descricao, data, criado_por, is_delete, created_at FROM eventos
		 WHERE is_delete = FALSE AND titulo ILIKE $1 ESCAPE '\'
		 ORDER BY data, id
		 LIMIT $2 OFFSET $3`,
		pattern, q.PerPage, q.Offset())
	if err != nil {
		return nil, 0, dbError(err)
	}
	out, err := collect(rows, scanEvento)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *eventosRepo) UpdateEvento(ctx context.Context, e domain.Evento) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE eventos SET titulo = $1, descricao = $2, data = $3
		 WHERE id = $4 AND is_delete = FALSE`,
		e.Titulo, e.Descricao, e.Data, e.ID))
}

func (r *eventosRepo) SoftDeleteEvento(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE eventos SET is_delete = TRUE WHERE id = $1 AND is_delete = FALSE`, id))
}
