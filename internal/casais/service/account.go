package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/pkg/cryptox"
	"github.com/aussiebroadwan/casais/pkg/idx"
	"github.com/aussiebroadwan/casais/pkg/jwtx"
	"github.com/aussiebroadwan/casais/pkg/slogx"
)

type AccountService struct {
	Store    store.Store
	Hasher   *cryptox.Hasher
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// LoginResult is a freshly signed session token and the account it is for.
type LoginResult struct {
	Token   string
	Account domain.Account
}

// Register creates a standard account. Usernames are matched exactly.
func (s *AccountService) Register(ctx context.Context, username, password string) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(username) == "" || password == "" {
		return domain.Account{}, ErrInvalidInput
	}

	_, err := s.Store.Accounts().GetAccountByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.Account{}, ErrUsernameTaken
	case !errors.Is(err, store.ErrNotFound):
		return domain.Account{}, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		NameHistory:  []string{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		// lost a race with a concurrent register
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrUsernameTaken
		}
		return domain.Account{}, err
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("username", account.Username),
	)
	return account, nil
}

// Login checks the password and signs a session token carrying the
// account's current role. Legacy bcrypt hashes are upgraded on success.
func (s *AccountService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidInput
	}

	account, err := s.Store.Accounts().GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := s.Hasher.Verify(password, account.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			log.Error("stored password hash unreadable",
				slog.String("account_id", account.ID),
				slog.Any("error", err),
			)
		}
		return LoginResult{}, ErrInvalidCredentials
	}

	if s.Hasher.NeedsRehash(account.PasswordHash) {
		s.rehash(ctx, account.ID, password)
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(account.ID, account.Username, account.Role, s.Issuer, ttl, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}

	return LoginResult{Token: token, Account: account}, nil
}

func (s *AccountService) rehash(ctx context.Context, accountID, password string) {
	log := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(password)
	if err == nil {
		err = s.Store.Accounts().UpdatePasswordHash(ctx, accountID, hash)
	}
	if err != nil {
		log.Warn("password hash upgrade failed",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
		return
	}
	log.Info("password hash upgraded", slog.String("account_id", accountID))
}

// History returns the account's name history, oldest first.
func (s *AccountService) History(ctx context.Context, accountID string) ([]string, error) {
	return s.Store.Accounts().ListNames(ctx, accountID)
}

// AppendHistory records name unless it is already present and returns the
// resulting history.
func (s *AccountService) AppendHistory(ctx context.Context, accountID, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	var history []string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Accounts().AppendName(ctx, accountID, name); err != nil {
			return err
		}
		var err error
		history, err = tx.Accounts().ListNames(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// RemoveHistory drops name from the history. Removing an absent name is not
// an error.
func (s *AccountService) RemoveHistory(ctx context.Context, accountID, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	var history []string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Accounts().RemoveName(ctx, accountID, name); err != nil {
			return err
		}
		var err error
		history, err = tx.Accounts().ListNames(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// SetRole changes an account's role. Tokens already issued keep the old role
// until they expire.
func (s *AccountService) SetRole(ctx context.Context, username, role string) error {
	if !domain.ValidRole(role) {
		return ErrInvalidRole
	}
	if err := s.Store.Accounts().UpdateRole(ctx, username, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("account role changed",
		slog.String("username", username),
		slog.String("role", role),
	)
	return nil
}
