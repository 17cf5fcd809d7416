package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/pkg/idx"
	"github.com/aussiebroadwan/casais/pkg/slogx"
)

// EventoService manages the shared calendar. Reads are open to every
// account; writes are gated to leaders at the HTTP layer.
type EventoService struct {
	Store store.Store
}

func (s *EventoService) List(ctx context.Context, q store.ListQuery) (Page[domain.Evento], error) {
	q = q.Normalize()
	items, total, err := s.Store.Eventos().ListEventos(ctx, q)
	if err != nil {
		return Page[domain.Evento]{}, err
	}
	return newPage(items, total, q)
}

func (s *EventoService) Get(ctx context.Context, id string) (domain.Evento, error) {
	e, err := s.Store.Eventos().GetEvento(ctx, id)
	return e, notFound(err)
}

// validDate reports whether data opens with a real YYYY-MM-DD date. A time
// may follow it; listing orders on the raw text.
func validDate(data string) bool {
	if len(data) < len(time.DateOnly) {
		return false
	}
	_, err := time.Parse(time.DateOnly, data[:len(time.DateOnly)])
	return err == nil
}

func (s *EventoService) Create(ctx context.Context, creatorID string, p domain.EventoPatch) (domain.Evento, error) {
	if strings.TrimSpace(p.Titulo) == "" || !validDate(p.Data) {
		return domain.Evento{}, ErrInvalidInput
	}

	e := domain.Evento{
		ID:        idx.New().String(),
		CriadoPor: creatorID,
		CreatedAt: time.Now().UTC(),
	}
	e.Apply(p)

	if err := s.Store.Eventos().CreateEvento(ctx, e); err != nil {
		return domain.Evento{}, err
	}

	slogx.FromContext(ctx).Info("evento created",
		slog.String("evento_id", e.ID),
		slog.String("criado_por", creatorID),
	)
	return e, nil
}

func (s *EventoService) Update(ctx context.Context, id string, p domain.EventoPatch) (domain.Evento, error) {
	if p.Data != "" && !validDate(p.Data) {
		return domain.Evento{}, ErrInvalidInput
	}

	e, err := s.Store.Eventos().GetEvento(ctx, id)
	if err != nil {
		return domain.Evento{}, notFound(err)
	}

	e.Apply(p)
	if err := s.Store.Eventos().UpdateEvento(ctx, e); err != nil {
		return domain.Evento{}, notFound(err)
	}
	return e, nil
}

func (s *EventoService) Delete(ctx context.Context, id string) error {
	return notFound(s.Store.Eventos().SoftDeleteEvento(ctx, id))
}
