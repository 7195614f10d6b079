package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/natur-festival/natur.eco/internal/registration"
)

// Store persists profile records.
type Store interface {
	PutProfile(ctx context.Context, record Profile) error
	GetProfileByUserID(ctx context.Context, userID string) (Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (Profile, error)
}

// AssetStore persists uploaded image bytes and returns their public URL.
type AssetStore interface {
	SaveImage(ctx context.Context, userID string, kind ImageKind, contentType string, data []byte) (string, error)
}

// Service implements profile creation, lookup, and editing.
type Service struct {
	store  Store
	assets AssetStore
	now    func() time.Time
}

// NewService builds a profile service.
func NewService(store Store, assets AssetStore) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("profile store is required")
	}
	return &Service{store: store, assets: assets, now: time.Now}, nil
}

// CreateProfile persists a profile derived from a completed registration
// form. It backs the wizard's profile-creation collaborator.
func (s *Service) CreateProfile(ctx context.Context, userID string, form registration.FormData, category registration.Category, subcategory string) error {
	record := FromForm(userID, form, category, subcategory, s.now())
	username, err := s.availableUsername(ctx, record.Username)
	if err != nil {
		return err
	}
	record.Username = username
	if err := s.store.PutProfile(ctx, record); err != nil {
		return fmt.Errorf("store profile: %w", err)
	}
	return nil
}

// Get loads a profile by owner id.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	return s.store.GetProfileByUserID(ctx, userID)
}

// GetByUsername loads a public profile by username.
func (s *Service) GetByUsername(ctx context.Context, username string) (Profile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if err := ValidateUsername(username); err != nil {
		return Profile{}, ErrNotFound
	}
	return s.store.GetProfileByUsername(ctx, username)
}

// ProfileEdit carries the editable profile fields. Empty fields leave the
// stored value in place.
type ProfileEdit struct {
	DisplayName string
	Username    string
	Bio         string
	Location    string
	Website     string
}

// UpdateDetails shallow-merges the editable fields into the stored profile.
// Empty inputs leave the current value in place.
func (s *Service) UpdateDetails(ctx context.Context, userID string, edit ProfileEdit) (Profile, error) {
	record, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	if displayName := strings.TrimSpace(edit.DisplayName); displayName != "" {
		record.DisplayName = displayName
	}
	if bio := strings.TrimSpace(edit.Bio); bio != "" {
		record.Bio = bio
	}
	if location := strings.TrimSpace(edit.Location); location != "" {
		record.Location = location
	}
	if website := strings.TrimSpace(edit.Website); website != "" {
		record.Website = website
	}
	if username := strings.ToLower(strings.TrimSpace(edit.Username)); username != "" && username != record.Username {
		if err := ValidateUsername(username); err != nil {
			return Profile{}, err
		}
		if _, err := s.store.GetProfileByUsername(ctx, username); err == nil {
			return Profile{}, ErrUsernameTaken
		} else if !errors.Is(err, ErrNotFound) {
			return Profile{}, fmt.Errorf("check username: %w", err)
		}
		record.Username = username
	}
	record.UpdatedAt = s.now().UTC()
	if err := s.store.PutProfile(ctx, record); err != nil {
		return Profile{}, fmt.Errorf("store profile: %w", err)
	}
	return record, nil
}

// UpdateImage validates an upload, stores the bytes, and records the new
// public URL on the profile. Validation happens before any store call.
func (s *Service) UpdateImage(ctx context.Context, userID string, kind ImageKind, contentType string, data []byte) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("unknown image kind %q", kind)
	}
	if err := ValidateImage(int64(len(data)), contentType); err != nil {
		return "", err
	}
	if s.assets == nil {
		return "", fmt.Errorf("asset store is not configured")
	}
	url, err := s.assets.SaveImage(ctx, userID, kind, contentType, data)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	record, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	switch kind {
	case ImageKindAvatar:
		record.AvatarURL = url
	case ImageKindCover:
		record.CoverURL = url
	}
	record.UpdatedAt = s.now().UTC()
	if err := s.store.PutProfile(ctx, record); err != nil {
		return "", fmt.Errorf("store profile: %w", err)
	}
	return url, nil
}

// availableUsername returns base or the first numbered variant not yet taken.
func (s *Service) availableUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for attempt := 0; attempt < 20; attempt++ {
		if attempt > 0 {
			candidate = fmt.Sprintf("%s%d", base, attempt+1)
		}
		_, err := s.store.GetProfileByUsername(ctx, candidate)
		if errors.Is(err, ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("check username: %w", err)
		}
	}
	return "", ErrUsernameTaken
}
