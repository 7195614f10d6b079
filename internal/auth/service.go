package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
	"github.com/natur-festival/natur.eco/internal/platform/id"
)

// AccountStore persists account records.
type AccountStore interface {
	PutUser(ctx context.Context, account Account) error
	GetUserByEmail(ctx context.Context, email string) (Account, error)
	GetUserByID(ctx context.Context, userID string) (Account, error)
}

// Session is the result of a successful registration or login.
type Session struct {
	Account Account
	Token   string
}

// Service implements account registration and login.
type Service struct {
	store  AccountStore
	signer *TokenSigner
	newID  func() (string, error)
	now    func() time.Time
}

// NewService builds an account service over the given store and signer.
func NewService(store AccountStore, signer *TokenSigner) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("account store is required")
	}
	if signer == nil {
		return nil, fmt.Errorf("token signer is required")
	}
	return &Service{store: store, signer: signer, newID: id.NewID, now: time.Now}, nil
}

// Register creates an account and signs the caller in.
func (s *Service) Register(ctx context.Context, email string, password string) (Session, error) {
	account, err := s.createAccount(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	return s.newSession(account)
}

// CreateAccount creates an account and returns its id. It backs the
// registration wizard's account-creation collaborator.
func (s *Service) CreateAccount(ctx context.Context, email string, password string) (string, error) {
	account, err := s.createAccount(ctx, email, password)
	if err != nil {
		return "", err
	}
	return account.ID, nil
}

// Login verifies credentials and returns a fresh session.
func (s *Service) Login(ctx context.Context, email string, password string) (Session, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}
	account, err := s.store.GetUserByEmail(ctx, normalized)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("load account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.newSession(account)
}

// SessionForUser issues a fresh session for an existing account id.
func (s *Service) SessionForUser(ctx context.Context, userID string) (Session, error) {
	account, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return Session{}, fmt.Errorf("load account: %w", err)
	}
	return s.newSession(account)
}

// VerifySession resolves a session token into the account identity.
func (s *Service) VerifySession(token string) (userID string, email string, err error) {
	return s.signer.Verify(token)
}

func (s *Service) createAccount(ctx context.Context, email string, password string) (Account, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return Account{}, err
	}
	if err := ValidatePassword(password); err != nil {
		return Account{}, err
	}
	if _, err := s.store.GetUserByEmail(ctx, normalized); err == nil {
		return Account{}, ErrEmailTaken
	} else if apperrors.CodeOf(err) != apperrors.CodeNotFound {
		return Account{}, fmt.Errorf("check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}
	accountID, err := s.newID()
	if err != nil {
		return Account{}, fmt.Errorf("generate account id: %w", err)
	}
	now := s.now().UTC()
	account := Account{
		ID:           accountID,
		Email:        normalized,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.PutUser(ctx, account); err != nil {
		return Account{}, fmt.Errorf("store account: %w", err)
	}
	return account, nil
}

func (s *Service) newSession(account Account) (Session, error) {
	token, err := s.signer.Sign(account)
	if err != nil {
		return Session{}, err
	}
	return Session{Account: account, Token: token}, nil
}

// IsCredentialError reports whether err represents a failed credential check
// rather than an infrastructure failure.
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
