package registration

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Wizard step cursor values. The cursor only ever moves one step at a time
// and stays clamped to [StepCategory, StepConfirmation].
const (
	StepCategory       = 1
	StepSubcategory    = 2
	StepPersonalInfo   = 3
	StepAdditionalInfo = 4
	StepConsent        = 5
	StepConfirmation   = 6
)

var (
	// ErrInvalidCategory reports a category outside the closed enumeration.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrUnknownSubcategory reports a subcategory missing from the current
	// category's catalog.
	ErrUnknownSubcategory = errors.New("subcategory not in catalog")
	// ErrTermsRequired reports a consent submission without accepted terms.
	ErrTermsRequired = errors.New("terms must be accepted")
	// ErrNotReady reports a completion attempt before the consent step passed.
	ErrNotReady = errors.New("wizard is not ready to complete")
	// ErrAlreadyCompleted reports a second completion attempt.
	ErrAlreadyCompleted = errors.New("wizard already completed")
)

// FieldError reports a missing or malformed required form field.
type FieldError struct {
	Field string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %s is required", e.Field)
}

// Wizard is one visitor's registration session. It is mutated only through
// its step methods; persistence between requests is the caller's concern.
type Wizard struct {
	ID          string
	Step        int
	Category    Category
	Subcategory string
	Form        FormData
	CompletedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewWizard starts a wizard at the category step.
func NewWizard(id string, now time.Time) *Wizard {
	return &Wizard{
		ID:        id,
		Step:      StepCategory,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// SelectCategory records the top-level category, clears any previously chosen
// subcategory, and advances to the subcategory step. Clearing on selection is
// the consistency guard that keeps a subcategory from being orphaned under a
// different category within the same session.
func (w *Wizard) SelectCategory(raw string) error {
	category, ok := ParseCategory(raw)
	if !ok {
		return ErrInvalidCategory
	}
	w.Category = category
	w.Subcategory = ""
	w.Step = StepSubcategory
	return nil
}

// SelectSubcategory records a subcategory and advances to personal info.
// The id must belong to the current category's catalog.
func (w *Wizard) SelectSubcategory(id string) error {
	if !w.Category.IsValid() {
		return ErrInvalidCategory
	}
	id = strings.TrimSpace(id)
	if !SubcategoryInCatalog(w.Category, id) {
		return ErrUnknownSubcategory
	}
	w.Subcategory = id
	w.Step = StepPersonalInfo
	return nil
}

// PersonalInfo carries the personal-info step fields.
type PersonalInfo struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Website  string
	Referral string
}

// SubmitPersonal validates the required personal fields, merges them into the
// form, and advances to the additional-info step.
func (w *Wizard) SubmitPersonal(info PersonalInfo) error {
	info.Name = strings.TrimSpace(info.Name)
	info.Email = strings.TrimSpace(info.Email)
	info.Location = strings.TrimSpace(info.Location)
	if info.Name == "" {
		return FieldError{Field: "name"}
	}
	if info.Email == "" {
		return FieldError{Field: "email"}
	}
	if _, err := mail.ParseAddress(info.Email); err != nil {
		return FieldError{Field: "email"}
	}
	if info.Location == "" {
		return FieldError{Field: "location"}
	}
	w.Form.Name = info.Name
	w.Form.Email = info.Email
	w.Form.Phone = strings.TrimSpace(info.Phone)
	w.Form.Location = info.Location
	w.Form.Website = strings.TrimSpace(info.Website)
	w.Form.Referral = strings.TrimSpace(info.Referral)
	w.Step = StepAdditionalInfo
	return nil
}

// AdditionalInfo carries the category-specific step fields. Only the slice
// matching the wizard's category is read; the rest is ignored.
type AdditionalInfo struct {
	Interests         map[string]bool
	ParticipationType map[string]bool
	SupportNeeded     map[string]bool

	StartupName   string
	StartupStage  string
	ProblemSolved string
	TeamSize      string

	CompanyName   string
	SponsorBudget string
	BrandGoals    string

	Organization string
	Expertise    string
	NomadOrigin  string
	NomadMonths  string

	Occupation string
	HeardAbout string

	Comments string
}

// SubmitAdditional validates the fields required for the current category,
// merges the category-specific slice into the form, and advances to consent.
func (w *Wizard) SubmitAdditional(info AdditionalInfo) error {
	switch w.Category {
	case CategoryStartup:
		if strings.TrimSpace(info.StartupName) == "" {
			return FieldError{Field: "startupName"}
		}
		if strings.TrimSpace(info.ProblemSolved) == "" {
			return FieldError{Field: "problemSolved"}
		}
		w.Form.StartupName = strings.TrimSpace(info.StartupName)
		w.Form.StartupStage = strings.TrimSpace(info.StartupStage)
		w.Form.ProblemSolved = strings.TrimSpace(info.ProblemSolved)
		w.Form.TeamSize = strings.TrimSpace(info.TeamSize)
	case CategorySponsor:
		if strings.TrimSpace(info.CompanyName) == "" {
			return FieldError{Field: "companyName"}
		}
		w.Form.CompanyName = strings.TrimSpace(info.CompanyName)
		w.Form.SponsorBudget = strings.TrimSpace(info.SponsorBudget)
		w.Form.BrandGoals = strings.TrimSpace(info.BrandGoals)
	case CategoryEcosystem:
		w.Form.Organization = strings.TrimSpace(info.Organization)
		w.Form.Expertise = strings.TrimSpace(info.Expertise)
		w.Form.NomadOrigin = strings.TrimSpace(info.NomadOrigin)
		w.Form.NomadMonths = strings.TrimSpace(info.NomadMonths)
	case CategoryAttendee:
		w.Form.Occupation = strings.TrimSpace(info.Occupation)
		w.Form.HeardAbout = strings.TrimSpace(info.HeardAbout)
	default:
		return ErrInvalidCategory
	}
	if info.Interests != nil {
		w.Form.Interests = info.Interests
	}
	if info.ParticipationType != nil {
		w.Form.ParticipationType = info.ParticipationType
	}
	if info.SupportNeeded != nil {
		w.Form.SupportNeeded = info.SupportNeeded
	}
	w.Form.Comments = strings.TrimSpace(info.Comments)
	w.Step = StepConsent
	return nil
}

// SubmitConsent records consent and advances to confirmation. Terms are
// mandatory; the marketing opt-in never blocks submission.
func (w *Wizard) SubmitConsent(terms bool, marketing bool) error {
	if !terms {
		return ErrTermsRequired
	}
	w.Form.AcceptedTerms = true
	w.Form.AcceptedMarketing = marketing
	w.Step = StepConfirmation
	return nil
}

// Back moves the cursor one step back, never below the category step. It
// deliberately clears nothing: a visitor returning to an earlier step keeps
// every answer already given.
func (w *Wizard) Back() {
	if w.Step > StepCategory {
		w.Step--
	}
}

// Next moves the cursor one step forward without validation, never beyond
// the confirmation step.
func (w *Wizard) Next() {
	if w.Step < StepConfirmation {
		w.Step++
	}
}

// Completed reports whether the wizard already created an account.
func (w *Wizard) Completed() bool {
	return !w.CompletedAt.IsZero()
}

// AccountCreator creates the participant's account.
type AccountCreator interface {
	CreateAccount(ctx context.Context, email string, password string) (userID string, err error)
}

// ProfileCreator persists the collected registration as a profile.
type ProfileCreator interface {
	CreateProfile(ctx context.Context, userID string, form FormData, category Category, subcategory string) error
}

// Complete creates the account and then the profile from the collected form.
// There is no retry and no rollback: an account-creation failure leaves the
// wizard untouched, a profile-creation failure leaves the account in place
// and the wizard incomplete, matching the surface behavior callers expect.
func (w *Wizard) Complete(ctx context.Context, password string, accounts AccountCreator, profiles ProfileCreator, now time.Time) (string, error) {
	if w.Completed() {
		return "", ErrAlreadyCompleted
	}
	if w.Step != StepConfirmation || !w.Form.AcceptedTerms {
		return "", ErrNotReady
	}
	userID, err := accounts.CreateAccount(ctx, w.Form.Email, password)
	if err != nil {
		return "", fmt.Errorf("create account: %w", err)
	}
	if err := profiles.CreateProfile(ctx, userID, w.Form, w.Category, w.Subcategory); err != nil {
		return "", fmt.Errorf("create profile: %w", err)
	}
	w.CompletedAt = now.UTC()
	return userID, nil
}
