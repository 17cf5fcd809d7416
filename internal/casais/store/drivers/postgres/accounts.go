package postgres

import (
	"context"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
)

type accountsRepo struct{ db DBTX }

var _ store.Accounts = (*accountsRepo)(nil)

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	query :=
		`INSERT INTO accounts (id, username, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, a.ID, a.Username, a.PasswordHash, a.Role, a.CreatedAt)
	return dbError(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	query :=
		`SELECT id, username, password_hash, role, created_at FROM accounts
		 WHERE id = $1`

	return r.get(ctx, query, id)
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	query :=
		`SELECT id, username, password_hash, role, created_at FROM accounts
		 WHERE username = $1`

	return r.get(ctx, query, username)
}

func (r *accountsRepo) get(ctx context.Context, query string, arg string) (domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		return domain.Account{}, dbError(err)
	}

	a.NameHistory, err = r.ListNames(ctx, a.ID)
	if err != nil {
		return domain.Account{}, err
	}
	return a, nil
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE accounts SET password_hash = $1 WHERE id = $2`, hash, id))
}

func (r *accountsRepo) UpdateRole(ctx context.Context, username, role string) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE accounts SET role = $1 WHERE username = $2`, role, username))
}

func (r *accountsRepo) ListNames(ctx context.Context, accountID string) ([]string, error) {
	query :=
		`SELECT name FROM account_names
		 WHERE account_id = $1
		 ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dbError(err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err)
	}
	return names, nil
}

func (r *accountsRepo) AppendName(ctx context.Context, accountID, name string) (bool, error) {
	query :=
		`INSERT INTO account_names (account_id, name)
		 VALUES ($1, $2)
		 ON CONFLICT (account_id, name) DO NOTHING`

	return wrote(r.db.ExecContext(ctx, query, accountID, name))
}

func (r *accountsRepo) RemoveName(ctx context.Context, accountID, name string) (bool, error) {
	return wrote(r.db.ExecContext(ctx,
		`DELETE FROM account_names WHERE account_id = $1 AND name = $2`, accountID, name))
}
