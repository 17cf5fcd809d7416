package sqlite

import (
	"context"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/internal/casais/store/drivers/sqlite/gen"
)

type eventosRepo struct{ q *gen.Queries }

var _ store.Eventos = (*eventosRepo)(nil)

func (r *eventosRepo) CreateEvento(ctx context.Context, e domain.Evento) error {
	err := r.q.CreateEvento(ctx, gen.CreateEventoParams{
		ID:        e.ID,
		Titulo:    e.Titulo,
		Descricao: e.Descricao,
		Data:      e.Data,
		CriadoPor: e.CriadoPor,
		CreatedAt: e.CreatedAt,
	})
	return mapConflict(err)
}

func (r *eventosRepo) GetEvento(ctx context.Context, id string) (domain.Evento, error) {
	row, err := r.q.GetEvento(ctx, id)
	if err != nil {
		return domain.Evento{}, mapNotFound(err)
	}
	return mapEvento(row), nil
}

func (r *eventosRepo) ListEventos(ctx context.Context, q store.ListQuery) ([]domain.Evento, int, error) {
	q = q.Normalize()
	pattern := store.LikePattern(q.Search)

	total, err := r.q.CountEventos(ctx, pattern)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.q.ListEventos(ctx, gen.ListEventosParams{
		Pattern: pattern,
		Limit:   int64(q.PerPage),
		Offset:  int64(q.Offset()),
	})
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Evento, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapEvento(row))
	}
	return out, int(total), nil
}

func (r *eventosRepo) UpdateEvento(ctx context.Context, e domain.Evento) error {
	return requireRow(r.q.UpdateEvento(ctx, gen.UpdateEventoParams{
		Titulo:    e.Titulo,
		Descricao: e.Descricao,
		Data:      e.Data,
		ID:        e.ID,
	}))
}

func (r *eventosRepo) SoftDeleteEvento(ctx context.Context, id string) error {
	return requireRow(r.q.SoftDeleteEvento(ctx, id))
}
