package sqlite

import (
	"context"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/internal/casais/store/drivers/sqlite/gen"
)

type accountsRepo struct{ q *gen.Queries }

var _ store.Accounts = (*accountsRepo)(nil)

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	err := r.q.CreateAccount(ctx, gen.CreateAccountParams{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		CreatedAt:    a.CreatedAt,
	})
	return mapConflict(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row, err := r.q.GetAccountByID(ctx, id)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return r.withNames(ctx, mapAccount(row))
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	row, err := r.q.GetAccountByUsername(ctx, username)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return r.withNames(ctx, mapAccount(row))
}

func (r *accountsRepo) withNames(ctx context.Context, a domain.Account) (domain.Account, error) {
	names, err := r.ListNames(ctx, a.ID)
	if err != nil {
		return domain.Account{}, err
	}
	a.NameHistory = names
	return a, nil
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return requireRow(r.q.UpdateAccountPasswordHash(ctx, gen.UpdateAccountPasswordHashParams{
		PasswordHash: hash,
		ID:           id,
	}))
}

func (r *accountsRepo) UpdateRole(ctx context.Context, username, role string) error {
	return requireRow(r.q.UpdateAccountRole(ctx, gen.UpdateAccountRoleParams{
		Role:     role,
		Username: username,
	}))
}

func (r *accountsRepo) ListNames(ctx context.Context, accountID string) ([]string, error) {
	names, err := r.q.ListAccountNames(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *accountsRepo) AppendName(ctx context.Context, accountID, name string) (bool, error) {
	n, err := r.q.AppendAccountName(ctx, gen.AppendAccountNameParams{
		AccountID: accountID,
		Name:      name,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *accountsRepo) RemoveName(ctx context.Context, accountID, name string) (bool, error) {
	n, err := r.q.DeleteAccountName(ctx, gen.DeleteAccountNameParams{
		AccountID: accountID,
		Name:      name,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
