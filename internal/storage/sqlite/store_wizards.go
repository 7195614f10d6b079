package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
	"github.com/natur-festival/natur.eco/internal/registration"
)

// PutWizard upserts a wizard session.
func (s *Store) PutWizard(ctx context.Context, wizard *registration.Wizard) error {
	if wizard == nil {
		return fmt.Errorf("wizard is required")
	}
	form, err := json.Marshal(wizard.Form)
	if err != nil {
		return fmt.Errorf("marshal form: %w", err)
	}
	var completedAt sql.NullInt64
	if !wizard.CompletedAt.IsZero() {
		completedAt = sql.NullInt64{Int64: toMillis(wizard.CompletedAt), Valid: true}
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO wizard_sessions (id, step, category, subcategory, form_json, completed_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    step = excluded.step,
    category = excluded.category,
    subcategory = excluded.subcategory,
    form_json = excluded.form_json,
    completed_at = excluded.completed_at,
    updated_at = excluded.updated_at;
`,
		wizard.ID,
		wizard.Step,
		string(wizard.Category),
		wizard.Subcategory,
		string(form),
		completedAt,
		toMillis(wizard.CreatedAt),
		toMillis(wizard.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put wizard: %w", err)
	}
	return nil
}

// GetWizard loads a wizard session by id.
func (s *Store) GetWizard(ctx context.Context, wizardID string) (*registration.Wizard, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, step, category, subcategory, form_json, completed_at, created_at, updated_at
FROM wizard_sessions
WHERE id = ?;
`, wizardID)

	var wizard registration.Wizard
	var category string
	var formJSON string
	var completedAt sql.NullInt64
	var createdAt int64
	var updatedAt int64
	err := row.Scan(&wizard.ID, &wizard.Step, &category, &wizard.Subcategory, &formJSON, &completedAt, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.New(apperrors.CodeNotFound, "wizard session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scan wizard: %w", err)
	}
	wizard.Category = registration.Category(category)
	if err := json.Unmarshal([]byte(formJSON), &wizard.Form); err != nil {
		return nil, fmt.Errorf("unmarshal form: %w", err)
	}
	if completedAt.Valid {
		wizard.CompletedAt = fromMillis(completedAt.Int64)
	}
	wizard.CreatedAt = fromMillis(createdAt)
	wizard.UpdatedAt = fromMillis(updatedAt)
	return &wizard, nil
}

// DeleteWizard removes a wizard session. Deleting a missing session is a no-op.
func (s *Store) DeleteWizard(ctx context.Context, wizardID string) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM wizard_sessions WHERE id = ?;`, wizardID); err != nil {
		return fmt.Errorf("delete wizard: %w", err)
	}
	return nil
}
