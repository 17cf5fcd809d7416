package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/media"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/pkg/idx"
	"github.com/aussiebroadwan/casais/pkg/slogx"
)

// Image is an uploaded file held in memory until it is forwarded to the
// media host.
type Image struct {
	Filename string
	Data     []byte
}

type CasalService struct {
	Store store.Store
	Media media.Bridge
}

func (s *CasalService) List(ctx context.Context, ownerID string, q store.ListQuery) (Page[domain.Casal], error) {
	q = q.Normalize()
	items, total, err := s.Store.Casais().ListCasais(ctx, ownerID, q)
	if err != nil {
		return Page[domain.Casal]{}, err
	}
	return newPage(items, total, q)
}

// Add stores a new casal for ownerID. When img is set it is uploaded first;
// an upload failure aborts the add. The name is appended to the owner's
// name history.
func (s *CasalService) Add(ctx context.Context, ownerID string, p domain.CasalPatch, img *Image) (domain.Casal, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Casal{}, ErrInvalidInput
	}

	c := domain.Casal{
		ID:     idx.New().String(),
		UserID: ownerID,
		Date:   time.Now().UTC(),
	}
	c.Apply(p)

	if img != nil {
		ref, err := s.upload(ctx, img)
		if err != nil {
			return domain.Casal{}, err
		}
		c.Image, c.PublicID = ref.URL, ref.Handle
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Casais().CreateCasal(ctx, c); err != nil {
			return err
		}
		_, err := tx.Accounts().AppendName(ctx, ownerID, c.Name)
		return err
	})
	if err != nil {
		s.discard(ctx, c.PublicID)
		return domain.Casal{}, err
	}

	slogx.FromContext(ctx).Info("casal added",
		slog.String("casal_id", c.ID),
		slog.String("user_id", ownerID),
	)
	return c, nil
}

// Update merges p into the stored casal. A new image replaces the old one;
// the old object is deleted best-effort.
func (s *CasalService) Update(ctx context.Context, ownerID, id string, p domain.CasalPatch, img *Image) (domain.Casal, error) {
	if id == "" {
		return domain.Casal{}, ErrInvalidInput
	}

	current, err := s.get(ctx, ownerID, id)
	if err != nil {
		return domain.Casal{}, err
	}
	oldHandle := current.PublicID

	// media fields only change through an upload
	p.Image, p.PublicID = "", ""
	if img != nil {
		ref, err := s.upload(ctx, img)
		if err != nil {
			return domain.Casal{}, err
		}
		p.Image, p.PublicID = ref.URL, ref.Handle
	}

	updated := current
	updated.Apply(p)

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Casais().UpdateCasal(ctx, updated); err != nil {
			return err
		}
		if updated.Name == current.Name {
			return nil
		}
		_, err := tx.Accounts().AppendName(ctx, ownerID, updated.Name)
		return err
	})
	if err != nil {
		if img != nil {
			s.discard(ctx, p.PublicID)
		}
		if errors.Is(err, store.ErrNotFound) {
			return domain.Casal{}, ErrNotFound
		}
		return domain.Casal{}, err
	}

	if img != nil && oldHandle != "" && oldHandle != updated.PublicID {
		s.discard(ctx, oldHandle)
	}
	return updated, nil
}

// Delete flags the casal as deleted and keeps every other field. Removing
// the image at the media host is attempted but never fails the delete.
func (s *CasalService) Delete(ctx context.Context, ownerID, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	current, err := s.get(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.Store.Casais().SoftDeleteCasal(ctx, ownerID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.discard(ctx, current.PublicID)
	return nil
}

func (s *CasalService) get(ctx context.Context, ownerID, id string) (domain.Casal, error) {
	c, err := s.Store.Casais().GetCasal(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Casal{}, ErrNotFound
		}
		return domain.Casal{}, err
	}
	return c, nil
}

func (s *CasalService) upload(ctx context.Context, img *Image) (media.Ref, error) {
	ref, err := s.Media.Upload(ctx, img.Filename, img.Data)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) {
			return media.Ref{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return media.Ref{}, fmt.Errorf("%w: %w", ErrMediaUpload, err)
	}
	return ref, nil
}

// discard deletes handle at the media host and only logs a failure.
func (s *CasalService) discard(ctx context.Context, handle string) {
	if handle == "" {
		return
	}
	if err := s.Media.Destroy(ctx, handle); err != nil {
		slogx.FromContext(ctx).Warn("media delete failed",
			slog.String("public_id", handle),
			slog.Any("error", err),
		)
	}
}
