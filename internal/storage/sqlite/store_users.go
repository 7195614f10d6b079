package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/natur-festival/natur.eco/internal/auth"
	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
)

// PutUser upserts an account record.
func (s *Store) PutUser(ctx context.Context, account auth.Account) error {
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO users (id, email, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    email = excluded.email,
    password_hash = excluded.password_hash,
    updated_at = excluded.updated_at;
`,
		account.ID,
		account.Email,
		account.PasswordHash,
		toMillis(account.CreatedAt),
		toMillis(account.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// GetUserByEmail loads an account by normalized email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (auth.Account, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, email, password_hash, created_at, updated_at
FROM users
WHERE email = ?;
`, email)
	return scanUser(row)
}

// GetUserByID loads an account by id.
func (s *Store) GetUserByID(ctx context.Context, userID string) (auth.Account, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, email, password_hash, created_at, updated_at
FROM users
WHERE id = ?;
`, userID)
	return scanUser(row)
}

func scanUser(row *sql.Row) (auth.Account, error) {
	var account auth.Account
	var createdAt int64
	var updatedAt int64
	err := row.Scan(&account.ID, &account.Email, &account.PasswordHash, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.Account{}, apperrors.New(apperrors.CodeNotFound, "user not found")
	}
	if err != nil {
		return auth.Account{}, fmt.Errorf("scan user: %w", err)
	}
	account.CreatedAt = fromMillis(createdAt)
	account.UpdatedAt = fromMillis(updatedAt)
	return account, nil
}
