package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/commboard/commboard/internal/common"
	"github.com/commboard/commboard/internal/dbx"
	"github.com/commboard/commboard/internal/logging"
	"github.com/commboard/commboard/internal/server/config"
	"github.com/commboard/commboard/internal/server/models"
	"github.com/commboard/commboard/internal/server/repositories/refreshtokens"
	"github.com/commboard/commboard/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  15 * time.Minute,
		RefreshTokenValidityDuration: 7 * 24 * time.Hour,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return string(hash)
}

// --- in-memory fakes ---

type fakeUsersRepo struct {
	byEmail map[string]*models.User
	byID    map[int64]*models.User

	getErr    error
	createErr error
	nextID    int64
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		byEmail: map[string]*models.User{},
		byID:    map[int64]*models.User{},
		nextID:  1,
	}
}

func (f *fakeUsersRepo) add(u *models.User) *models.User {
	if u.ID == 0 {
		u.ID = f.nextID
		f.nextID++
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrEmailTaken
	}
	u.RegDate = time.Now()
	return f.add(u), nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *u
	return &copied, nil
}

type fakeTokensRepo struct {
	rows map[int64]*models.RefreshToken

	upsertErr   error
	findErr     error
	deleteErr   error
	upsertCalls int
}

func newFakeTokensRepo() *fakeTokensRepo {
	return &fakeTokensRepo{rows: map[int64]*models.RefreshToken{}}
}

func (f *fakeTokensRepo) Upsert(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upsertCalls++
	f.rows[userID] = &models.RefreshToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeTokensRepo) FindByUserID(ctx context.Context, userID int64) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	row, ok := f.rows[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeTokensRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.rows, userID)
	return nil
}

type fakeRepoManager struct {
	users  *fakeUsersRepo
	tokens *fakeTokensRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{users: newFakeUsersRepo(), tokens: newFakeTokensRepo()}
}

func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository {
	return f.users
}

func (f *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return f.tokens
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
