// Package services contains server-side business logic. This file implements
// UserService: signup, signin, and issuing stateless session credentials.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DarshanchGIT/wordverse/internal/common"
	"github.com/DarshanchGIT/wordverse/internal/logging"
	"github.com/DarshanchGIT/wordverse/internal/server/auth"
	"github.com/DarshanchGIT/wordverse/internal/server/config"
	"github.com/DarshanchGIT/wordverse/internal/server/models"
	"github.com/DarshanchGIT/wordverse/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the signin email is unknown, so the
// request costs the same bcrypt work either way and does not leak account
// existence through timing.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("wordverse-dummy"), bcrypt.DefaultCost)

// UserService provides authentication-related operations:
// - Register: create users and mint a session credential
// - Login: verify credentials and mint a session credential
type UserService struct {
	db            *sql.DB
	repos         repomanager.RepositoryManager
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:            db,
		repos:         m,
		logger:        logger.With("module", "user_service"),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register validates the signup input, creates the user with a bcrypt
// password hash, and returns a signed session credential. A duplicate email
// yields common.ErrorEmailExists; bad input yields a common.ValidationError.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if err := validateSignup(name, email, password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	repo := s.repos.Users(s.db)
	if _, err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			return "", err
		}
		s.logger.Error(ctx, "user create failed", "error", err.Error())
		return "", fmt.Errorf("%w: creating user", common.ErrorStorageUnavailable)
	}

	return s.issueToken(user.ID)
}

// Login verifies the email/password pair and returns a signed session
// credential. Unknown email and wrong password are indistinguishable:
// both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn the same bcrypt cost as the happy path
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return "", fmt.Errorf("%w: loading user", common.ErrorStorageUnavailable)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrorUnauthorized
	}

	return s.issueToken(user.ID)
}

func (s *UserService) issueToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

func validateSignup(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return &common.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return &common.ValidationError{Field: "email", Reason: "must be a valid address"}
	}
	if len(password) < 6 {
		return &common.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	return nil
}
