package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return New(db), mock
}

var casalCols = []string{"id", "user_id", "name", "description", "niver_h", "niver_m", "tel", "image", "public_id", "is_delete", "date"}

func TestCreateAccountDuplicate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+accounts`).
		WithArgs("acc-1", "ana", "hash", domain.RoleUser, sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	err := s.Accounts().CreateAccount(context.Background(), domain.Account{
		ID: "acc-1", Username: "ana", PasswordHash: "hash", Role: domain.RoleUser, CreatedAt: time.Now(),
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestGetAccountLoadsHistory(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*username.*FROM\s+accounts\s+WHERE\s+username\s*=\s*\$1`).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
			AddRow("acc-1", "ana", "hash", domain.RoleLeader, now))
	mock.ExpectQuery(`(?s)^SELECT\s+name\s+FROM\s+account_names.*ORDER\s+BY\s+seq`).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ana & Rui").AddRow("Bia & Leo"))

	got, err := s.Accounts().GetAccountByUsername(context.Background(), "ana")
	require.NoError(t, err)
	require.Equal(t, domain.RoleLeader, got.Role)
	require.Equal(t, []string{"Ana & Rui", "Bia & Leo"}, got.NameHistory)
}

func TestGetAccountNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Accounts().GetAccountByID(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAppendNameConflictIsNoop(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+account_names.*ON\s+CONFLICT.*DO\s+NOTHING`).
		WithArgs("acc-1", "Ana & Rui").
		WillReturnResult(sqlmock.NewResult(0, 0))

	added, err := s.Accounts().AppendName(context.Background(), "acc-1", "Ana & Rui")
	require.NoError(t, err)
	require.False(t, added)
}

func TestListCasaisScopedAndPaged(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)SELECT\s+COUNT\(\*\)\s+FROM\s+casais\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+is_delete\s*=\s*FALSE\s+AND\s+name\s+ILIKE\s+\$2`).
		WithArgs("acc-1", `%100\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`(?s)FROM\s+casais.*ORDER\s+BY\s+id\s+LIMIT\s+\$3\s+OFFSET\s+\$4`).
		WithArgs("acc-1", `%100\%%`, 5, 5).
		WillReturnRows(sqlmock.NewRows(casalCols).
			AddRow("c-6", "acc-1", "100% Rui", "", "", "", "", "", "", false, now))

	list, total, err := s.Casais().ListCasais(context.Background(), "acc-1", store.ListQuery{Search: " 100% ", Page: 2})
	require.NoError(t, err)
	require.Equal(t, 7, total)
	require.Len(t, list, 1)
	require.Equal(t, "100% Rui", list[0].Name)
}

func TestCasaisRequireOwner(t *testing.T) {
	s, _ := newMockStore(t)
	ctx := context.Background()

	_, _, err := s.Casais().ListCasais(ctx, "", store.ListQuery{})
	require.ErrorIs(t, err, store.ErrUnscoped)
	require.ErrorIs(t, s.Casais().SoftDeleteCasal(ctx, "", "c-1"), store.ErrUnscoped)
	require.ErrorIs(t, s.CasaisSimples().UpdateCasalSimple(ctx, domain.CasalSimple{ID: "c-1"}), store.ErrUnscoped)
}

func TestSoftDeleteMissingRow(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`(?s)UPDATE\s+casais\s+SET\s+is_delete\s*=\s*TRUE`).
		WithArgs("c-1", "acc-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Casais().SoftDeleteCasal(context.Background(), "acc-2", "c-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateEventoWrapsDriverErrors(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`(?s)UPDATE\s+eventos\s+SET\s+titulo`).
		WillReturnError(errors.New("db down"))

	err := s.Eventos().UpdateEvento(context.Background(), domain.Evento{ID: "e-1", Titulo: "Retiro", Data: "2026-12-01"})
	require.ErrorContains(t, err, "db error: db down")
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)UPDATE\s+accounts\s+SET\s+role`).
		WithArgs(domain.RoleLeader, "ana").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := s.WithTx(context.Background(), func(tx store.Tx) error {
		require.NoError(t, tx.Accounts().UpdateRole(context.Background(), "ana", domain.RoleLeader))
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestApplyMigrationsUsesEmbeddedDir(t *testing.T) {
	s, _ := newMockStore(t)

	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var dir string
	gooseUp = func(ctx context.Context, db *sql.DB, d string) error {
		dir = d
		return nil
	}

	require.NoError(t, s.ApplyMigrations())
	require.Equal(t, ".", dir)
}
