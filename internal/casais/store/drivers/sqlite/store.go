package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/internal/casais/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// registerFuncs replaces the built-in lower(), which only folds ASCII, with
// one that folds the same way strings.ToLower does. The registration applies
// to every connection opened after it, so it must run before sql.Open.
var registerFuncs = sync.OnceValue(func() error {
	return msqlite.RegisterDeterministicScalarFunction("lower", 1, unicodeLower)
})

func unicodeLower(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return strings.ToLower(fmt.Sprint(v)), nil
	}
}

// NewStore opens the database at dsn (a path, "file:" URI or ":memory:").
// The pool is pinned to one connection: SQLite serialises writers anyway,
// and an in-memory database only exists on the connection that created it.
func NewStore(dsn string) (*Store, error) {
	if err := registerFuncs(); err != nil {
		return nil, fmt.Errorf("register sqlite functions: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Accounts() store.Accounts           { return &accountsRepo{q: s.q} }
func (s *Store) Casais() store.Casais               { return &casaisRepo{q: s.q} }
func (s *Store) CasaisSimples() store.CasaisSimples { return &casaisSimplesRepo{q: s.q} }
func (s *Store) Eventos() store.Eventos             { return &eventosRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict turns unique/primary key violations into store.ErrAlreadyExists.
func mapConflict(err error) error {
	var sqlErr *msqlite.Error
	if errors.As(err, &sqlErr) {
		switch sqlErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

// requireRow maps a zero-row update to store.ErrNotFound.
func requireRow(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapAccount(row gen.Account) domain.Account {
	return domain.Account{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		CreatedAt:    row.CreatedAt,
	}
}

func mapCasal(row gen.Casai) domain.Casal {
	return domain.Casal{
		ID:       row.ID,
		UserID:   row.UserID,
		Name:     row.Name,
		Desc:     row.Description,
		NiverH:   row.NiverH,
		NiverM:   row.NiverM,
		Tel:      row.Tel,
		Image:    row.Image,
		PublicID: row.PublicID,
		IsDelete: row.IsDelete,
		Date:     row.Date,
	}
}

func mapCasalSimple(row gen.CasaisSimple) domain.CasalSimple {
	return domain.CasalSimple{
		ID:       row.ID,
		UserID:   row.UserID,
		Name:     row.Name,
		Age:      int(row.Age),
		IsDelete: row.IsDelete,
		Date:     row.Date,
	}
}

func mapEvento(row gen.Evento) domain.Evento {
	return domain.Evento{
		ID:        row.ID,
		Titulo:    row.Titulo,
		Descricao: row.Descricao,
		Data:      row.Data,
		CriadoPor: row.CriadoPor,
		IsDelete:  row.IsDelete,
		CreatedAt: row.CreatedAt,
	}
}
