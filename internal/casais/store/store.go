package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrUnscoped is returned when an owned-record operation is called
	// without an owner id.
	ErrUnscoped = errors.New("store: owner id required")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement it and expose one sub-repository per record type.
type Store interface {
	Accounts() Accounts
	Casais() Casais
	CasaisSimples() CasaisSimples
	Eventos() Eventos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount fails with ErrAlreadyExists on a duplicate username.
	CreateAccount(ctx context.Context, a domain.Account) error
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	UpdateRole(ctx context.Context, username, role string) error

	// ListNames returns the account's name history, oldest first.
	ListNames(ctx context.Context, accountID string) ([]string, error)
	// AppendName adds name unless the account already has it; it reports
	// whether a row was written.
	AppendName(ctx context.Context, accountID, name string) (bool, error)
	RemoveName(ctx context.Context, accountID, name string) (bool, error)
}

// Casais is owner scoped: every read, update and delete matches
// user_id = ownerID and is_delete = false.
type Casais interface {
	CreateCasal(ctx context.Context, c domain.Casal) error
	GetCasal(ctx context.Context, ownerID, id string) (domain.Casal, error)
	ListCasais(ctx context.Context, ownerID string, q ListQuery) ([]domain.Casal, int, error)
	// UpdateCasal writes every mutable field of c, matched on c.ID and c.UserID.
	UpdateCasal(ctx context.Context, c domain.Casal) error
	SoftDeleteCasal(ctx context.Context, ownerID, id string) error
}

// CasaisSimples is owner scoped like Casais.
type CasaisSimples interface {
	CreateCasalSimple(ctx context.Context, c domain.CasalSimple) error
	GetCasalSimple(ctx context.Context, ownerID, id string) (domain.CasalSimple, error)
	ListCasaisSimples(ctx context.Context, ownerID string, q ListQuery) ([]domain.CasalSimple, int, error)
	UpdateCasalSimple(ctx context.Context, c domain.CasalSimple) error
	SoftDeleteCasalSimple(ctx context.Context, ownerID, id string) error
}

// Eventos is shared across accounts: only is_delete = false is applied.
type Eventos interface {
	CreateEvento(ctx context.Context, e domain.Evento) error
	GetEvento(ctx context.Context, id string) (domain.Evento, error)
	ListEventos(ctx context.Context, q ListQuery) ([]domain.Evento, int, error)
	UpdateEvento(ctx context.Context, e domain.Evento) error
	SoftDeleteEvento(ctx context.Context, id string) error
}
