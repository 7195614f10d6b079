package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
	"github.com/natur-festival/natur.eco/internal/profile"
	"github.com/natur-festival/natur.eco/internal/registration"
)

// PutProfile upserts a profile record.
func (s *Store) PutProfile(ctx context.Context, record profile.Profile) error {
	interests, err := json.Marshal(record.Interests)
	if err != nil {
		return fmt.Errorf("marshal interests: %w", err)
	}
	stats, err := json.Marshal(record.Stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	metrics, err := json.Marshal(record.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO profiles (
    user_id, username, display_name, bio, location, website,
    avatar_url, cover_url, category, subcategory,
    interests_json, stats_json, metrics_json, created_at, updated_at
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
    username = excluded.username,
    display_name = excluded.display_name,
    bio = excluded.bio,
    location = excluded.location,
    website = excluded.website,
    avatar_url = excluded.avatar_url,
    cover_url = excluded.cover_url,
    category = excluded.category,
    subcategory = excluded.subcategory,
    interests_json = excluded.interests_json,
    stats_json = excluded.stats_json,
    metrics_json = excluded.metrics_json,
    updated_at = excluded.updated_at;
`,
		record.UserID,
		record.Username,
		record.DisplayName,
		record.Bio,
		record.Location,
		record.Website,
		record.AvatarURL,
		record.CoverURL,
		string(record.Category),
		record.Subcategory,
		string(interests),
		string(stats),
		string(metrics),
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// GetProfileByUserID loads a profile by owner id.
func (s *Store) GetProfileByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	row := s.sqlDB.QueryRowContext(ctx, profileSelect+`WHERE user_id = ?;`, userID)
	return scanProfile(row)
}

// GetProfileByUsername loads a profile by public username.
func (s *Store) GetProfileByUsername(ctx context.Context, username string) (profile.Profile, error) {
	row := s.sqlDB.QueryRowContext(ctx, profileSelect+`WHERE username = ?;`, username)
	return scanProfile(row)
}

const profileSelect = `
SELECT user_id, username, display_name, bio, location, website,
    avatar_url, cover_url, category, subcategory,
    interests_json, stats_json, metrics_json, created_at, updated_at
FROM profiles
`

func scanProfile(row *sql.Row) (profile.Profile, error) {
	var record profile.Profile
	var category string
	var interestsJSON string
	var statsJSON string
	var metricsJSON string
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&record.UserID,
		&record.Username,
		&record.DisplayName,
		&record.Bio,
		&record.Location,
		&record.Website,
		&record.AvatarURL,
		&record.CoverURL,
		&category,
		&record.Subcategory,
		&interestsJSON,
		&statsJSON,
		&metricsJSON,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.Profile{}, apperrors.New(apperrors.CodeProfileNotFound, "profile not found")
	}
	if err != nil {
		return profile.Profile{}, fmt.Errorf("scan profile: %w", err)
	}
	record.Category = registration.Category(category)
	if err := json.Unmarshal([]byte(interestsJSON), &record.Interests); err != nil {
		return profile.Profile{}, fmt.Errorf("unmarshal interests: %w", err)
	}
	if err := json.Unmarshal([]byte(statsJSON), &record.Stats); err != nil {
		return profile.Profile{}, fmt.Errorf("unmarshal stats: %w", err)
	}
	if err := json.Unmarshal([]byte(metricsJSON), &record.Metrics); err != nil {
		return profile.Profile{}, fmt.Errorf("unmarshal metrics: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
