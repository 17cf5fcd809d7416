package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/stretchr/testify/require"
)

func TestCasalApplyKeepsUntouchedFields(t *testing.T) {
	c := domain.Casal{Name: "Silva", Desc: "old", Tel: "123", Image: "http://img/1"}
	c.Apply(domain.CasalPatch{Desc: "new"})

	require.Equal(t, "Silva", c.Name)
	require.Equal(t, "new", c.Desc)
	require.Equal(t, "123", c.Tel)
	require.Equal(t, "http://img/1", c.Image)
}

func TestCasalSimpleApplyZeroAge(t *testing.T) {
	c := domain.CasalSimple{Name: "Ana & Rui", Age: 7}
	c.Apply(domain.CasalSimplePatch{Name: "Ana e Rui"})
	require.Equal(t, 7, c.Age)
	require.Equal(t, "Ana e Rui", c.Name)

	c.Apply(domain.CasalSimplePatch{Age: 8})
	require.Equal(t, 8, c.Age)
}

func TestEventoApply(t *testing.T) {
	e := domain.Evento{Titulo: "Culto", Data: "2026-10-19"}
	e.Apply(domain.EventoPatch{Descricao: "às 19h"})
	require.Equal(t, domain.Evento{Titulo: "Culto", Descricao: "às 19h", Data: "2026-10-19"}, e)
}

func TestValidRole(t *testing.T) {
	require.True(t, domain.ValidRole(domain.RoleUser))
	require.True(t, domain.ValidRole(domain.RoleLeader))
	require.False(t, domain.ValidRole("admin"))
}
