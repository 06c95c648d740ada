package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/commboard/commboard/internal/common"
	"github.com/commboard/commboard/internal/dbx"
	"github.com/commboard/commboard/internal/logging"
	"github.com/commboard/commboard/internal/server/models"
	"github.com/commboard/commboard/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles account registration and profile lookups. It never
// returns a user with the password hash set.
type UserService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewUserService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *UserService {
	return &UserService{
		db:     db,
		repos:  repos,
		logger: logger.With("component", "user_service"),
	}
}

// Register creates an account with a bcrypt-hashed password. A taken email
// returns common.ErrEmailTaken. The existence check and the insert run in
// one transaction; the unique index still backstops a concurrent insert.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, err
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrEmailTaken
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		created, err = repo.Create(ctx, &models.User{Email: email, Password: string(hash), Name: name})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		s.logger.Error(ctx, "user creation failed", "email", email, "error", err)
		return nil, err
	}

	return omitPassword(created), nil
}

// GetByEmail returns the account registered under email, without the
// password hash. Absent accounts return common.ErrorNotFound.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		s.logger.Error(ctx, "user lookup failed", "email", email, "error", err)
		return nil, err
	}
	return omitPassword(user), nil
}

// GetByID returns the account with the given id, without the password hash.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repos.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		s.logger.Error(ctx, "user lookup failed", "userId", id, "error", err)
		return nil, err
	}
	return omitPassword(user), nil
}
