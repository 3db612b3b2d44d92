// Package services contains the access store operations: identity,
// authorization checks, and the project and file lifecycle. Every operation
// is its own unit of work against the shared connection pool.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/peercolab/internal/common"
	"github.com/dmitrijs2005/peercolab/internal/cryptox"
	"github.com/dmitrijs2005/peercolab/internal/logging"
	"github.com/dmitrijs2005/peercolab/internal/server/auth"
	"github.com/dmitrijs2005/peercolab/internal/server/config"
	"github.com/dmitrijs2005/peercolab/internal/server/models"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/repomanager"
)

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	params                       cryptox.Params
	jwtSecret                    []byte
	sessionTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		logger:                       l.With("module", "users"),
		params:                       cfg.ScryptParams(),
		jwtSecret:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
	}
}

// Register creates a user with a fresh salt and scrypt hash. It returns false
// when the email is already registered.
func (s *UserService) Register(ctx context.Context, email, password, firstName, lastName string, isTeacher bool) (bool, error) {
	repo := s.repomanager.Users(s.db)

	exists, err := repo.Exists(ctx, email)
	if err != nil {
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return false, storageFault(err)
	}
	if exists {
		return false, nil
	}

	salt := cryptox.NewSalt()
	hash, err := cryptox.HashPassword(password, salt, s.params)
	if err != nil {
		return false, err
	}

	user := &models.User{
		Email:     email,
		Hash:      hash,
		Salt:      salt,
		FirstName: firstName,
		LastName:  lastName,
		IsTeacher: isTeacher,
		ScryptN:   s.params.N,
		ScryptR:   s.params.R,
		ScryptP:   s.params.P,
	}
	if err := repo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, common.ErrorConflict) {
			return false, nil
		}
		s.logger.Error(ctx, "user insert failed", "error", err)
		return false, storageFault(err)
	}

	s.logger.Info(ctx, "user registered", "email", email, "teacher", isTeacher)
	return true, nil
}

// Authenticate reports whether password matches the stored hash for email,
// using the cost parameters recorded at registration. Unknown emails yield
// false.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (bool, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return false, storageFault(err)
	}

	p := cryptox.Params{N: user.ScryptN, R: user.ScryptR, P: user.ScryptP}
	return cryptox.VerifyPassword(password, user.Salt, user.Hash, p)
}

// Login authenticates the user and returns a session token. Wrong
// credentials yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	ok, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	if !ok {
		s.logger.Warn(ctx, "login rejected", "email", email)
		return "", ErrInvalidCredentials
	}
	return auth.GenerateToken(email, s.jwtSecret, s.sessionTokenValidityDuration)
}

// SessionEmail returns the email a session token was issued for.
func (s *UserService) SessionEmail(token string) (string, error) {
	return auth.GetEmailFromToken(token, s.jwtSecret)
}

// Get returns the user's profile without hash and salt.
func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageFault(err)
	}
	user.Hash = nil
	user.Salt = nil
	return user, nil
}

// IsTeacher reports whether email belongs to a user with the teacher flag.
func (s *UserService) IsTeacher(ctx context.Context, email string) (bool, error) {
	return isTeacher(ctx, s.repomanager, s.db, email)
}
