package http

import (
	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/service"
	"github.com/aussiebroadwan/casais/pkg/casaissdk"
)

func toCasal(c domain.Casal) casaissdk.Casal {
	return casaissdk.Casal{
		ID:       c.ID,
		UserID:   c.UserID,
		Name:     c.Name,
		Desc:     c.Desc,
		NiverH:   c.NiverH,
		NiverM:   c.NiverM,
		Tel:      c.Tel,
		Image:    c.Image,
		PublicID: c.PublicID,
		IsDelete: c.IsDelete,
		Date:     c.Date,
	}
}

func toCasalSimple(c domain.CasalSimple) casaissdk.CasalSimple {
	return casaissdk.CasalSimple{
		ID:       c.ID,
		UserID:   c.UserID,
		Name:     c.Name,
		Age:      c.Age,
		IsDelete: c.IsDelete,
		Date:     c.Date,
	}
}

func toEvento(e domain.Evento) casaissdk.Evento {
	return casaissdk.Evento{
		ID:        e.ID,
		Titulo:    e.Titulo,
		Descricao: e.Descricao,
		Data:      e.Data,
		CriadoPor: e.CriadoPor,
		IsDelete:  e.IsDelete,
		CreatedAt: e.CreatedAt,
	}
}

func mapAll[T, W any](items []T, fn func(T) W) []W {
	out := make([]W, len(items))
	for i, it := range items {
		out[i] = fn(it)
	}
	return out
}

func pagination[T any](p service.Page[T]) casaissdk.Pagination {
	return casaissdk.Pagination{
		CurrentPage: p.CurrentPage,
		Total:       p.Total,
		Pages:       p.Pages,
	}
}
