package service

import (
	"context"
	"testing"
	"time"

	"ranchops/internal/config"
	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*model.User // by ID
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Active {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id.String()]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if u, ok := r.users[id.String()]; ok {
		u.Active = false
	}
	return nil
}

func (r *stubUserRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	if u, ok := r.users[id.String()]; ok {
		u.Active = true
	}
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

type stubSessionRepo struct {
	sessions map[string]*model.Session // by refresh token
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *model.Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	cp := *s
	r.sessions[s.RefreshToken] = &cp
	return nil
}

func (r *stubSessionRepo) FindByToken(_ context.Context, token string) (*model.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *stubSessionRepo) DeleteExpired(_ context.Context, before time.Time) error {
	for tok, s := range r.sessions {
		if s.ExpiresAt.Before(before) {
			delete(r.sessions, tok)
		}
	}
	return nil
}

var _ repository.SessionRepository = (*stubSessionRepo)(nil)

// ── Setup ─────────────────────────────────────────────────────────────────────

func setupAuthTest(t *testing.T) (AuthService, *stubUserRepo, *stubSessionRepo) {
	t.Helper()
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return NewAuthService(users, sessions, cfg), users, sessions
}

func seedUser(t *testing.T, users *stubUserRepo, username, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		Username:     username,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLoginIssuesTokensAndPersistsSession(t *testing.T) {
	svc, users, sessions := setupAuthTest(t)
	seedUser(t, users, "rancher", "pasture123", "user")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "rancher", Password: "pasture123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "rancher", resp.User.Username)

	_, err = sessions.FindByToken(context.Background(), resp.RefreshToken)
	assert.NoError(t, err, "refresh token should be persisted")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _ := setupAuthTest(t)
	seedUser(t, users, "rancher", "pasture123", "user")

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "rancher", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := setupAuthTest(t)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDeactivatedUser(t *testing.T) {
	svc, users, _ := setupAuthTest(t)
	u := seedUser(t, users, "former", "pasture123", "user")
	require.NoError(t, users.Deactivate(context.Background(), uuid.MustParse(u.ID)))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "former", Password: "pasture123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesSession(t *testing.T) {
	svc, users, sessions := setupAuthTest(t)
	seedUser(t, users, "rancher", "pasture123", "user")
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "rancher", Password: "pasture123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The old refresh token is revoked; the new one works.
	_, err = sessions.FindByToken(ctx, login.RefreshToken)
	assert.Error(t, err)
	_, err = sessions.FindByToken(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshAfterLogoutRejected(t *testing.T) {
	svc, users, _ := setupAuthTest(t)
	seedUser(t, users, "rancher", "pasture123", "user")
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "rancher", Password: "pasture123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshGarbageTokenRejected(t *testing.T) {
	svc, _, _ := setupAuthTest(t)
	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateUserDuplicateUsernameConflicts(t *testing.T) {
	svc, _, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "rancher", Name: "First", Password: "longenough", Role: "user",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "rancher", Name: "Second", Password: "longenough", Role: "user",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateUserPartialMerge(t *testing.T) {
	svc, users, _ := setupAuthTest(t)
	u := seedUser(t, users, "rancher", "pasture123", "user")
	ctx := context.Background()

	newRole := "manager"
	resp, err := svc.UpdateUser(ctx, uuid.MustParse(u.ID), dto.UpdateUserRequest{Role: &newRole})
	require.NoError(t, err)
	assert.Equal(t, "manager", resp.Role)
	assert.Equal(t, "rancher", resp.Username)
	assert.Equal(t, "Test User", resp.Name)
}
