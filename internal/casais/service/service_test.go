package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/media"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/internal/casais/store/drivers/sqlite"
	"github.com/aussiebroadwan/casais/pkg/cryptox"
	"github.com/aussiebroadwan/casais/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testIssuer = "casais-api"

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fixture struct {
	store    *sqlite.Store
	accounts *AccountService
	casais   *CasalService
	simples  *CasalSimpleService
	eventos  *EventoService
	media    *media.Memory
	verifier *jwtx.HS256Verifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256([]byte("s3cr3t"))
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256([]byte("s3cr3t"), testIssuer)
	require.NoError(t, err)

	bridge := media.NewMemory("http://media.local")

	return &fixture{
		store: st,
		accounts: &AccountService{
			Store:    st,
			Hasher:   cryptox.NewHasher("pepper"),
			Signer:   signer,
			Issuer:   testIssuer,
			TokenTTL: time.Hour,
		},
		casais:   &CasalService{Store: st, Media: bridge},
		simples:  &CasalSimpleService{Store: st},
		eventos:  &EventoService{Store: st},
		media:    bridge,
		verifier: verifier,
	}
}

func (f *fixture) register(t *testing.T, username string) domain.Account {
	t.Helper()
	a, err := f.accounts.Register(context.Background(), username, "hunter2")
	require.NoError(t, err)
	return a
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.register(t, "ana")
	require.Equal(t, domain.RoleUser, a.Role)

	res, err := f.accounts.Login(ctx, "ana", "hunter2")
	require.NoError(t, err)
	require.Equal(t, a.ID, res.Account.ID)

	claims, err := f.verifier.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, a.ID, claims.Subject)
	require.Equal(t, "ana", claims.Username)
	require.Equal(t, domain.RoleUser, claims.Role)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, "ana", "other")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.accounts.Login(ctx, "ana", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.accounts.Login(ctx, "nobody", "hunter2")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, "", "x")
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = f.accounts.Login(ctx, "ana", "")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLoginUpgradesLegacyBcrypt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	legacy, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, f.store.Accounts().CreateAccount(ctx, domain.Account{
		ID:           "01JA0000000000000000000000",
		Username:     "velho",
		PasswordHash: string(legacy),
		Role:         domain.RoleLeader,
		CreatedAt:    time.Now().UTC(),
	}))

	res, err := f.accounts.Login(ctx, "velho", "hunter2")
	require.NoError(t, err)
	require.Equal(t, domain.RoleLeader, res.Account.Role)

	stored, err := f.store.Accounts().GetAccountByUsername(ctx, "velho")
	require.NoError(t, err)
	require.False(t, f.accounts.Hasher.NeedsRehash(stored.PasswordHash))

	_, err = f.accounts.Login(ctx, "velho", "hunter2")
	require.NoError(t, err)
}

func TestSetRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "ana")

	require.ErrorIs(t, f.accounts.SetRole(ctx, "ana", "admin"), ErrInvalidRole)
	require.ErrorIs(t, f.accounts.SetRole(ctx, "nobody", domain.RoleLeader), ErrNotFound)
	require.NoError(t, f.accounts.SetRole(ctx, "ana", domain.RoleLeader))

	res, err := f.accounts.Login(ctx, "ana", "hunter2")
	require.NoError(t, err)
	require.Equal(t, domain.RoleLeader, res.Account.Role)
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.register(t, "ana")

	h, err := f.accounts.History(ctx, a.ID)
	require.NoError(t, err)
	require.Empty(t, h)

	_, err = f.accounts.AppendHistory(ctx, a.ID, "Silva")
	require.NoError(t, err)
	h, err = f.accounts.AppendHistory(ctx, a.ID, "Souza")
	require.NoError(t, err)
	require.Equal(t, []string{"Silva", "Souza"}, h)

	h, err = f.accounts.AppendHistory(ctx, a.ID, "Silva")
	require.NoError(t, err)
	require.Equal(t, []string{"Silva", "Souza"}, h)

	h, err = f.accounts.RemoveHistory(ctx, a.ID, "Silva")
	require.NoError(t, err)
	require.Equal(t, []string{"Souza"}, h)

	_, err = f.accounts.AppendHistory(ctx, a.ID, "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCasalOwnershipIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "ana")
	bia := f.register(t, "bia")

	c, err := f.casais.Add(ctx, ana.ID, domain.CasalPatch{Name: "Ana & Rui"}, nil)
	require.NoError(t, err)

	_, err = f.casais.List(ctx, bia.ID, store.ListQuery{})
	require.ErrorIs(t, err, ErrNoRecords)

	_, err = f.casais.Update(ctx, bia.ID, c.ID, domain.CasalPatch{Name: "hijack"}, nil)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, f.casais.Delete(ctx, bia.ID, c.ID), ErrNotFound)

	page, err := f.casais.List(ctx, ana.ID, store.ListQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Ana & Rui", page.Items[0].Name)
}

func TestCasalPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "ana")

	for i := range 12 {
		_, err := f.casais.Add(ctx, ana.ID, domain.CasalPatch{Name: fmt.Sprintf("Casal %02d", i)}, nil)
		require.NoError(t, err)
	}

	page, err := f.casais.List(ctx, ana.ID, store.ListQuery{Page: 2, PerPage: 5})
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	require.Equal(t, 2, page.CurrentPage)
	require.Equal(t, 12, page.Total)
	require.Equal(t, 3, page.Pages)
	require.Equal(t, "Casal 05", page.Items[0].Name)

	page, err = f.casais.List(ctx, ana.ID, store.ListQuery{Page: 0, PerPage: 0})
	require.NoError(t, err)
	require.Equal(t, 1, page.CurrentPage)
	require.Len(t, page.Items, store.DefaultPerPage)

	_, err = f.casais.List(ctx, ana.ID, store.ListQuery{Page: 4, PerPage: 5})
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestCasalPartialUpdateAndHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "ana")

	c, err := f.casais.Add(ctx, ana.ID, domain.CasalPatch{Name: "Silva", Tel: "555-0101", Desc: "old"}, nil)
	require.NoError(t, err)

	u, err := f.casais.Update(ctx, ana.ID, c.ID, domain.CasalPatch{Desc: "new"}, nil)
	require.NoError(t, err)
	require.Equal(t, "Silva", u.Name)
	require.Equal(t, "555-0101", u.Tel)
	require.Equal(t, "new", u.Desc)

	_, err = f.casais.Update(ctx, ana.ID, c.ID, domain.CasalPatch{Name: "Souza"}, nil)
	require.NoError(t, err)

	h, err := f.accounts.History(ctx, ana.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Silva", "Souza"}, h)
}

func TestCasalMediaLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "ana")

	c, err := f.casais.Add(ctx, ana.ID, domain.CasalPatch{Name: "Silva"}, &Image{Filename: "a.png", Data: pngBytes})
	require.NoError(t, err)
	require.NotEmpty(t, c.Image)
	require.True(t, f.media.Has(c.PublicID))

	u, err := f.casais.Update(ctx, ana.ID, c.ID, domain.CasalPatch{}, &Image{Filename: "b.png", Data: pngBytes})
	require.NoError(t, err)
	require.NotEqual(t, c.PublicID, u.PublicID)
	require.False(t, f.media.Has(c.PublicID))
	require.True(t, f.media.Has(u.PublicID))

	t.Run("destroy failure does not fail the update", func(t *testing.T) {
		f.media.FailDestroy = errors.New("host down")
		t.Cleanup(func() { f.media.FailDestroy = nil })

		_, err := f.casais.Update(ctx, ana.ID, c.ID, domain.CasalPatch{}, &Image{Filename: "c.png", Data: pngBytes})
		require.NoError(t, err)
	})

	t.Run("upload failure aborts", func(t *testing.T) {
		f.media.FailUpload = errors.New("host down")
		t.Cleanup(func() { f.media.FailUpload = nil })

		_, err := f.casais.Add(ctx, ana.ID, domain.CasalPatch{Name: "Lima"}, &Image{Filename: "a.png", Data: pngBytes})
		require.ErrorIs(t, err, ErrMediaUpload)
	})

	t.Run("bad image type", func(t *testing.T) {
		_, err := f.casais.Add(ctx, ana.ID, domain.CasalPatch{Name: "Lima"}, &Image{Filename: "a.gif", Data: []byte("GIF89a")})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("delete keeps record and drops media", func(t *testing.T) {
		current, err := f.store.Casais().GetCasal(ctx, ana.ID, c.ID)
		require.NoError(t, err)

		require.NoError(t, f.casais.Delete(ctx, ana.ID, c.ID))
		require.False(t, f.media.Has(current.PublicID))
		require.ErrorIs(t, f.casais.Delete(ctx, ana.ID, c.ID), ErrNotFound)

		_, err = f.casais.List(ctx, ana.ID, store.ListQuery{})
		require.ErrorIs(t, err, ErrNoRecords)
	})
}

func TestCasalSimple(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "ana")
	bia := f.register(t, "bia")

	_, err := f.simples.Add(ctx, ana.ID, domain.CasalSimplePatch{Name: "Ana"})
	require.ErrorIs(t, err, ErrInvalidInput)

	c, err := f.simples.Add(ctx, ana.ID, domain.CasalSimplePatch{Name: "Ana", Age: 30})
	require.NoError(t, err)

	u, err := f.simples.Update(ctx, ana.ID, c.ID, domain.CasalSimplePatch{Age: 31})
	require.NoError(t, err)
	require.Equal(t, "Ana", u.Name)
	require.Equal(t, 31, u.Age)

	_, err = f.simples.Update(ctx, bia.ID, c.ID, domain.CasalSimplePatch{Age: 1})
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.simples.Delete(ctx, ana.ID, c.ID))
	_, err = f.simples.List(ctx, ana.ID, store.ListQuery{})
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestEventosAreShared(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "ana")

	_, err := f.eventos.Create(ctx, ana.ID, domain.EventoPatch{Titulo: "Retiro"})
	require.ErrorIs(t, err, ErrInvalidInput)

	e, err := f.eventos.Create(ctx, ana.ID, domain.EventoPatch{Titulo: "Retiro", Data: "2026-12-01"})
	require.NoError(t, err)
	require.Equal(t, ana.ID, e.CriadoPor)

	// eventos carry no owner filter
	page, err := f.eventos.List(ctx, store.ListQuery{Search: "retiro"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	u, err := f.eventos.Update(ctx, e.ID, domain.EventoPatch{Descricao: "no sítio"})
	require.NoError(t, err)
	require.Equal(t, "Retiro", u.Titulo)
	require.Equal(t, "no sítio", u.Descricao)
	require.Equal(t, ana.ID, u.CriadoPor)

	require.NoError(t, f.eventos.Delete(ctx, e.ID))
	_, err = f.eventos.Get(ctx, e.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEventoDateMustBeCalendarDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.register(t, "ana")

	for _, data := range []string{"amanhã", "2026-13-01", "2026-02-30", "01/12/2026", "2026-1-5"} {
		_, err := f.eventos.Create(ctx, ana.ID, domain.EventoPatch{Titulo: "Retiro", Data: data})
		require.ErrorIs(t, err, ErrInvalidInput, data)
	}

	e, err := f.eventos.Create(ctx, ana.ID, domain.EventoPatch{Titulo: "Retiro", Data: "2026-12-01T19:30"})
	require.NoError(t, err)
	require.Equal(t, "2026-12-01T19:30", e.Data)

	_, err = f.eventos.Update(ctx, e.ID, domain.EventoPatch{Data: "sábado"})
	require.ErrorIs(t, err, ErrInvalidInput)

	got, err := f.eventos.Get(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, "2026-12-01T19:30", got.Data)
}
