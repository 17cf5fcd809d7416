package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/pkg/idx"
)

type CasalSimpleService struct {
	Store store.Store
}

func (s *CasalSimpleService) List(ctx context.Context, ownerID string, q store.ListQuery) (Page[domain.CasalSimple], error) {
	q = q.Normalize()
	items, total, err := s.Store.CasaisSimples().ListCasaisSimples(ctx, ownerID, q)
	if err != nil {
		return Page[domain.CasalSimple]{}, err
	}
	return newPage(items, total, q)
}

func (s *CasalSimpleService) Add(ctx context.Context, ownerID string, p domain.CasalSimplePatch) (domain.CasalSimple, error) {
	if strings.TrimSpace(p.Name) == "" || p.Age <= 0 {
		return domain.CasalSimple{}, ErrInvalidInput
	}

	c := domain.CasalSimple{
		ID:     idx.New().String(),
		UserID: ownerID,
		Date:   time.Now().UTC(),
	}
	c.Apply(p)

	if err := s.Store.CasaisSimples().CreateCasalSimple(ctx, c); err != nil {
		return domain.CasalSimple{}, err
	}
	return c, nil
}

func (s *CasalSimpleService) Update(ctx context.Context, ownerID, id string, p domain.CasalSimplePatch) (domain.CasalSimple, error) {
	if p.Age < 0 {
		return domain.CasalSimple{}, ErrInvalidInput
	}

	c, err := s.Store.CasaisSimples().GetCasalSimple(ctx, ownerID, id)
	if err != nil {
		return domain.CasalSimple{}, notFound(err)
	}

	c.Apply(p)
	if err := s.Store.CasaisSimples().UpdateCasalSimple(ctx, c); err != nil {
		return domain.CasalSimple{}, notFound(err)
	}
	return c, nil
}

func (s *CasalSimpleService) Delete(ctx context.Context, ownerID, id string) error {
	return notFound(s.Store.CasaisSimples().SoftDeleteCasalSimple(ctx, ownerID, id))
}

func notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
