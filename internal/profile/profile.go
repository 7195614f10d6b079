// Package profile manages participant profiles created by the registration
// wizard and shown on the public profile pages.
package profile

import (
	"regexp"
	"sort"
	"strings"
	"time"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
	"github.com/natur-festival/natur.eco/internal/registration"
)

var (
	// ErrNotFound indicates a missing profile record.
	ErrNotFound = apperrors.New(apperrors.CodeProfileNotFound, "profile not found")
	// ErrInvalidUsername indicates a username outside the accepted format.
	ErrInvalidUsername = apperrors.New(apperrors.CodeProfileInvalidUsername, "username must be 3-32 lowercase alphanumeric, dot, dash, or underscore characters")
	// ErrUsernameTaken indicates the username is already claimed.
	ErrUsernameTaken = apperrors.New(apperrors.CodeProfileUsernameTaken, "username already taken")

	usernamePattern = regexp.MustCompile(`^[a-z0-9_.\-]{3,32}$`)
)

// Stats summarizes public profile counters.
type Stats struct {
	Followers   int
	Following   int
	Connections int
}

// Metrics carries category-specific profile fields. Every field is optional;
// only the slice matching the profile's category is ever populated.
type Metrics struct {
	// Startup metrics.
	StartupName   string
	StartupStage  string
	ProblemSolved string
	TeamSize      string

	// Sponsor metrics.
	CompanyName   string
	SponsorBudget string
	BrandGoals    string

	// Ecosystem metrics.
	Organization         string
	InvestmentThesis     string
	MentoringSpecialties string
	NomadOrigin          string
	NomadMonths          string
}

// Profile is the persisted display record for one registered participant.
type Profile struct {
	UserID      string
	Username    string
	DisplayName string
	Bio         string
	Location    string
	Website     string
	AvatarURL   string
	CoverURL    string
	Category    registration.Category
	Subcategory string
	Interests   []string
	Stats       Stats
	Metrics     Metrics
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateUsername enforces the canonical username format.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// UsernameFromEmail derives a default username from an email local part,
// squashing characters outside the accepted alphabet.
func UsernameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	local = strings.ToLower(local)
	var b strings.Builder
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	username := b.String()
	if len(username) < 3 {
		username = username + strings.Repeat("0", 3-len(username))
	}
	if len(username) > 32 {
		username = username[:32]
	}
	return username
}

// FromForm builds a profile from a completed registration form.
func FromForm(userID string, form registration.FormData, category registration.Category, subcategory string, now time.Time) Profile {
	interestOrder := make([]string, 0, len(form.Interests))
	for key := range form.Interests {
		interestOrder = append(interestOrder, key)
	}
	sort.Strings(interestOrder)

	// The form collects one free-text expertise field; which metric it feeds
	// depends on the ecosystem role chosen.
	var thesis, specialties string
	if subcategory == "investor" {
		thesis = form.Expertise
	} else {
		specialties = form.Expertise
	}

	return Profile{
		UserID:      userID,
		Username:    UsernameFromEmail(form.Email),
		DisplayName: form.Name,
		Location:    form.Location,
		Website:     form.Website,
		Category:    category,
		Subcategory: subcategory,
		Interests:   registration.SelectedGroupKeys(form.Interests, interestOrder),
		Metrics: Metrics{
			StartupName:          form.StartupName,
			StartupStage:         form.StartupStage,
			ProblemSolved:        form.ProblemSolved,
			TeamSize:             form.TeamSize,
			CompanyName:          form.CompanyName,
			SponsorBudget:        form.SponsorBudget,
			BrandGoals:           form.BrandGoals,
			Organization:         form.Organization,
			InvestmentThesis:     thesis,
			MentoringSpecialties: specialties,
			NomadOrigin:          form.NomadOrigin,
			NomadMonths:          form.NomadMonths,
		},
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}
