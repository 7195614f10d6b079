package registro

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
	"github.com/natur-festival/natur.eco/internal/platform/id"
	"github.com/natur-festival/natur.eco/internal/registration"
)

type service struct {
	store     WizardStore
	accounts  registration.AccountCreator
	profiles  registration.ProfileCreator
	sessions  SessionIssuer
	telemetry Telemetry
	newID     func() (string, error)
	now       func() time.Time
}

func newService(store WizardStore, accounts registration.AccountCreator, profiles registration.ProfileCreator, sessions SessionIssuer, telemetry Telemetry) service {
	return service{
		store:     store,
		accounts:  accounts,
		profiles:  profiles,
		sessions:  sessions,
		telemetry: telemetry,
		newID:     id.NewID,
		now:       time.Now,
	}
}

// load returns the stored wizard for the id, or nil when it does not exist.
func (s service) load(ctx context.Context, wizardID string) (*registration.Wizard, error) {
	if wizardID == "" {
		return nil, nil
	}
	wizard, err := s.store.GetWizard(ctx, wizardID)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load wizard: %w", err)
	}
	return wizard, nil
}

func (s service) start(ctx context.Context) (*registration.Wizard, error) {
	wizardID, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate wizard id: %w", err)
	}
	wizard := registration.NewWizard(wizardID, s.now())
	if err := s.store.PutWizard(ctx, wizard); err != nil {
		return nil, fmt.Errorf("store wizard: %w", err)
	}
	s.record(ctx, "wizard_started", wizard.ID, "")
	return wizard, nil
}

func (s service) save(ctx context.Context, wizard *registration.Wizard) error {
	wizard.UpdatedAt = s.now().UTC()
	if err := s.store.PutWizard(ctx, wizard); err != nil {
		return fmt.Errorf("store wizard: %w", err)
	}
	return nil
}

// complete finishes the wizard: account, profile, session, then cleanup.
func (s service) complete(ctx context.Context, wizard *registration.Wizard, password string) (string, error) {
	userID, err := wizard.Complete(ctx, password, s.accounts, s.profiles, s.now())
	if err != nil {
		return "", err
	}
	session, err := s.sessions.SessionForUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	if err := s.store.DeleteWizard(ctx, wizard.ID); err != nil {
		return "", fmt.Errorf("delete wizard: %w", err)
	}
	s.record(ctx, "registration_completed", wizard.ID, userID)
	return session.Token, nil
}

func (s service) record(ctx context.Context, eventName string, wizardID string, userID string) {
	if s.telemetry == nil {
		return
	}
	s.telemetry.RecordWizardEvent(ctx, eventName, wizardID, userID)
}
