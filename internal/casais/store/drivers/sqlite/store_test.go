package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedAccount(t *testing.T, s *Store, username string) domain.Account {
	t.Helper()

	a := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "$argon2id$dummy",
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.Accounts().CreateAccount(context.Background(), a))
	return a
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	a := seedAccount(t, s, "ana")

	t.Run("duplicate username", func(t *testing.T) {
		dup := a
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Accounts().CreateAccount(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("lookup", func(t *testing.T) {
		got, err := s.Accounts().GetAccountByUsername(ctx, "ana")
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
		require.Equal(t, domain.RoleUser, got.Role)
		require.Empty(t, got.NameHistory)

		_, err = s.Accounts().GetAccountByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("role and password", func(t *testing.T) {
		require.NoError(t, s.Accounts().UpdateRole(ctx, "ana", domain.RoleLeader))
		require.NoError(t, s.Accounts().UpdatePasswordHash(ctx, a.ID, "$argon2id$other"))

		got, err := s.Accounts().GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleLeader, got.Role)
		require.Equal(t, "$argon2id$other", got.PasswordHash)

		require.ErrorIs(t, s.Accounts().UpdateRole(ctx, "nobody", domain.RoleLeader), store.ErrNotFound)
	})

	t.Run("name history", func(t *testing.T) {
		repo := s.Accounts()

		added, err := repo.AppendName(ctx, a.ID, "Ana & Rui")
		require.NoError(t, err)
		require.True(t, added)

		added, err = repo.AppendName(ctx, a.ID, "Bia & Leo")
		require.NoError(t, err)
		require.True(t, added)

		added, err = repo.AppendName(ctx, a.ID, "Ana & Rui")
		require.NoError(t, err)
		require.False(t, added)

		names, err := repo.ListNames(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"Ana & Rui", "Bia & Leo"}, names)

		removed, err := repo.RemoveName(ctx, a.ID, "Ana & Rui")
		require.NoError(t, err)
		require.True(t, removed)

		removed, err = repo.RemoveName(ctx, a.ID, "Ana & Rui")
		require.NoError(t, err)
		require.False(t, removed)

		got, err := repo.GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"Bia & Leo"}, got.NameHistory)
	})
}

func TestCasaisOwnerScope(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ana := seedAccount(t, s, "ana")
	bia := seedAccount(t, s, "bia")

	c := domain.Casal{
		ID:     idx.New().String(),
		UserID: ana.ID,
		Name:   "Ana & Rui",
		Tel:    "555-0101",
		Date:   time.Now().UTC(),
	}
	require.NoError(t, s.Casais().CreateCasal(ctx, c))

	_, err := s.Casais().GetCasal(ctx, bia.ID, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Casais().GetCasal(ctx, "", c.ID)
	require.ErrorIs(t, err, store.ErrUnscoped)

	foreign := c
	foreign.UserID = bia.ID
	foreign.Name = "hijack"
	require.ErrorIs(t, s.Casais().UpdateCasal(ctx, foreign), store.ErrNotFound)
	require.ErrorIs(t, s.Casais().SoftDeleteCasal(ctx, bia.ID, c.ID), store.ErrNotFound)

	list, total, err := s.Casais().ListCasais(ctx, bia.ID, store.ListQuery{})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, list)

	got, err := s.Casais().GetCasal(ctx, ana.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Ana & Rui", got.Name)
	require.Equal(t, "555-0101", got.Tel)
}

func TestCasaisUpdateAndSoftDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ana := seedAccount(t, s, "ana")

	c := domain.Casal{ID: idx.New().String(), UserID: ana.ID, Name: "Ana & Rui", Date: time.Now().UTC()}
	require.NoError(t, s.Casais().CreateCasal(ctx, c))

	c.Desc = "casados em 2010"
	c.Image = "https://media.example/casais_app/x.jpg"
	c.PublicID = "casais_app/x.jpg"
	require.NoError(t, s.Casais().UpdateCasal(ctx, c))

	got, err := s.Casais().GetCasal(ctx, ana.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "casados em 2010", got.Desc)
	require.Equal(t, "casais_app/x.jpg", got.PublicID)

	require.NoError(t, s.Casais().SoftDeleteCasal(ctx, ana.ID, c.ID))
	require.ErrorIs(t, s.Casais().SoftDeleteCasal(ctx, ana.ID, c.ID), store.ErrNotFound)

	_, err = s.Casais().GetCasal(ctx, ana.ID, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// the row is kept, flagged
	var flagged bool
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT is_delete FROM casais WHERE id = ?`, c.ID).Scan(&flagged))
	require.True(t, flagged)
}

func TestListCasaisPaginationAndSearch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ana := seedAccount(t, s, "ana")

	base := time.Unix(1700000000, 0).UTC()
	names := []string{"Ana & Rui", "Bia & Leo", "Carla & Rui", "Dani & Edu", "Eva & Rui", "Fabi & Gil", "100%_Rui"}
	for i, n := range names {
		at := base.Add(time.Duration(i) * time.Second)
		require.NoError(t, s.Casais().CreateCasal(ctx, domain.Casal{
			ID:     idx.NewAt(at).String(),
			UserID: ana.ID,
			Name:   n,
			Date:   at,
		}))
	}

	t.Run("defaults", func(t *testing.T) {
		list, total, err := s.Casais().ListCasais(ctx, ana.ID, store.ListQuery{Page: -3})
		require.NoError(t, err)
		require.Equal(t, 7, total)
		require.Len(t, list, store.DefaultPerPage)
		require.Equal(t, "Ana & Rui", list[0].Name)
	})

	t.Run("second page", func(t *testing.T) {
		list, total, err := s.Casais().ListCasais(ctx, ana.ID, store.ListQuery{Page: 2, PerPage: 5})
		require.NoError(t, err)
		require.Equal(t, 7, total)
		require.Len(t, list, 2)
		require.Equal(t, "Fabi & Gil", list[0].Name)
	})

	t.Run("past the end", func(t *testing.T) {
		list, total, err := s.Casais().ListCasais(ctx, ana.ID, store.ListQuery{Page: 9, PerPage: 5})
		require.NoError(t, err)
		require.Equal(t, 7, total)
		require.Empty(t, list)
	})

	t.Run("case-insensitive search", func(t *testing.T) {
		list, total, err := s.Casais().ListCasais(ctx, ana.ID, store.ListQuery{Search: "rUI", PerPage: 10})
		require.NoError(t, err)
		require.Equal(t, 4, total)
		require.Len(t, list, 4)
	})

	t.Run("wildcards match literally", func(t *testing.T) {
		list, total, err := s.Casais().ListCasais(ctx, ana.ID, store.ListQuery{Search: "%_"})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Equal(t, "100%_Rui", list[0].Name)
	})
}

func TestSearchFoldsAccentedLetters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ana := seedAccount(t, s, "ana")

	require.NoError(t, s.Casais().CreateCasal(ctx, domain.Casal{
		ID: idx.New().String(), UserID: ana.ID, Name: "JOSÉ e ÂNGELA", Date: time.Now().UTC(),
	}))
	require.NoError(t, s.CasaisSimples().CreateCasalSimple(ctx, domain.CasalSimple{
		ID: idx.New().String(), UserID: ana.ID, Name: "JOÃO", Date: time.Now().UTC(),
	}))
	require.NoError(t, s.Eventos().CreateEvento(ctx, domain.Evento{
		ID: idx.New().String(), Titulo: "CONFRATERNIZAÇÃO", Data: "2026-12-01", CriadoPor: ana.ID, CreatedAt: time.Now().UTC(),
	}))

	for _, term := range []string{"josé", "JOSÉ", "ângela", "É E Â"} {
		t.Run(term, func(t *testing.T) {
			list, total, err := s.Casais().ListCasais(ctx, ana.ID, store.ListQuery{Search: term})
			require.NoError(t, err)
			require.Equal(t, 1, total)
			require.Equal(t, "JOSÉ e ÂNGELA", list[0].Name)
		})
	}

	_, total, err := s.CasaisSimples().ListCasaisSimples(ctx, ana.ID, store.ListQuery{Search: "joão"})
	require.NoError(t, err)
	require.Equal(t, 1, total)

	_, total, err = s.Eventos().ListEventos(ctx, store.ListQuery{Search: "ização"})
	require.NoError(t, err)
	require.Equal(t, 1, total)

	_, total, err = s.Casais().ListCasais(ctx, ana.ID, store.ListQuery{Search: "jose"})
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCasaisSimples(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ana := seedAccount(t, s, "ana")
	bia := seedAccount(t, s, "bia")

	c := domain.CasalSimple{ID: idx.New().String(), UserID: ana.ID, Name: "Ana", Age: 30, Date: time.Now().UTC()}
	require.NoError(t, s.CasaisSimples().CreateCasalSimple(ctx, c))

	c.Age = 31
	require.NoError(t, s.CasaisSimples().UpdateCasalSimple(ctx, c))

	got, err := s.CasaisSimples().GetCasalSimple(ctx, ana.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, 31, got.Age)

	list, total, err := s.CasaisSimples().ListCasaisSimples(ctx, bia.ID, store.ListQuery{})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, list)

	require.ErrorIs(t, s.CasaisSimples().SoftDeleteCasalSimple(ctx, bia.ID, c.ID), store.ErrNotFound)
	require.NoError(t, s.CasaisSimples().SoftDeleteCasalSimple(ctx, ana.ID, c.ID))

	list, total, err = s.CasaisSimples().ListCasaisSimples(ctx, ana.ID, store.ListQuery{})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, list)
}

func TestEventosShared(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ana := seedAccount(t, s, "ana")

	later := domain.Evento{ID: idx.New().String(), Titulo: "Retiro", Data: "2026-12-01", CriadoPor: ana.ID, CreatedAt: time.Now().UTC()}
	sooner := domain.Evento{ID: idx.New().String(), Titulo: "Jantar", Data: "2026-11-01", CriadoPor: ana.ID, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Eventos().CreateEvento(ctx, later))
	require.NoError(t, s.Eventos().CreateEvento(ctx, sooner))

	list, total, err := s.Eventos().ListEventos(ctx, store.ListQuery{})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, "Jantar", list[0].Titulo)

	sooner.Descricao = "na casa da Bia"
	require.NoError(t, s.Eventos().UpdateEvento(ctx, sooner))

	got, err := s.Eventos().GetEvento(ctx, sooner.ID)
	require.NoError(t, err)
	require.Equal(t, "na casa da Bia", got.Descricao)
	require.Equal(t, ana.ID, got.CriadoPor)

	require.NoError(t, s.Eventos().SoftDeleteEvento(ctx, sooner.ID))
	_, err = s.Eventos().GetEvento(ctx, sooner.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Eventos().UpdateEvento(ctx, sooner), store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Accounts().CreateAccount(ctx, domain.Account{
			ID:           idx.New().String(),
			Username:     "ghost",
			PasswordHash: "x",
			Role:         domain.RoleUser,
			CreatedAt:    time.Now().UTC(),
		}))
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Accounts().GetAccountByUsername(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}
