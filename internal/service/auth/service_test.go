package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/trace"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type fakeUserRepo struct {
	user.UserRepository
	users  map[string]user.User
	linked []string
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	u := f.users[email]
	provider := "google"
	u.OAuthProvider = &provider
	u.OAuthProviderID = &googleID
	f.users[email] = u
	f.linked = append(f.linked, email)
	return u, nil
}

type fakeRefreshTokenRepo struct {
	tokens  map[string]auth.RefreshToken
	revoked []string
	failOn  error
}

func (f *fakeRefreshTokenRepo) CreateRefreshToken(ctx context.Context, userID int64, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	if f.failOn != nil {
		return f.failOn
	}
	f.tokens[token] = auth.RefreshToken{UserID: userID, ExpiresAt: time.Unix(expiresAt, 0)}
	return nil
}

func (f *fakeRefreshTokenRepo) GetRefreshToken(ctx context.Context, token string) (auth.RefreshToken, error) {
	rt, ok := f.tokens[token]
	if !ok {
		return auth.RefreshToken{}, auth.ErrInvalidToken
	}
	return rt, nil
}

func (f *fakeRefreshTokenRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	if rt, ok := f.tokens[token]; ok {
		now := time.Now()
		rt.RevokedAt = &now
		f.tokens[token] = rt
	}
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteStaleRefreshTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type fakeTraceService struct {
	trace.TraceService
	opened []int64
}

func (f *fakeTraceService) Open(ctx context.Context, userID int64) (trace.Trace, error) {
	f.opened = append(f.opened, userID)
	return trace.Trace{ID: int64(100 + len(f.opened)), UserID: userID, LoginAt: time.Now()}, nil
}

type passthroughTx struct{ calls int }

func (p *passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type fixture struct {
	svc    *AuthServiceImpl
	users  *fakeUserRepo
	tokens *fakeRefreshTokenRepo
	traces *fakeTraceService
	tx     *passthroughTx
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	users := &fakeUserRepo{users: map[string]user.User{
		"dewi@example.com":  {ID: 7, Name: "Dewi", Email: "dewi@example.com", PasswordHash: &hashed, Role: user.RoleEmployee},
		"oauth@example.com": {ID: 8, Name: "Oka", Email: "oauth@example.com", Role: user.RoleAdmin},
	}}
	tokens := &fakeRefreshTokenRepo{tokens: map[string]auth.RefreshToken{}}
	traces := &fakeTraceService{}
	tx := &passthroughTx{}

	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	require.NoError(t, err)

	svc := NewAuthService(users, tokens, jwtService, traces, tx).(*AuthServiceImpl)
	return fixture{svc: svc, users: users, tokens: tokens, traces: traces, tx: tx}
}

var session = auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}

func TestAuthService_Login_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Login(context.Background(), auth.LoginRequest{Email: "dewi@example.com", Password: "password123"}, session)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, resp.RefreshTokenExpiresIn, resp.AccessTokenExpiresIn)
	assert.Equal(t, int64(101), resp.TraceID)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(7), resp.User.ID)

	assert.Equal(t, []int64{7}, f.traces.opened)
	assert.Contains(t, f.tokens.tokens, resp.RefreshToken)
	assert.Equal(t, 1, f.tx.calls)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	f := newFixture(t)

	cases := []auth.LoginRequest{
		{Email: "dewi@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "password123"},
		{Email: "oauth@example.com", Password: "password123"},
	}
	for _, req := range cases {
		_, err := f.svc.Login(context.Background(), req, session)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials, req.Email)
	}
	assert.Empty(t, f.traces.opened)
}

func TestAuthService_Login_TokenStoreFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("insert failed")
	f.tokens.failOn = boom

	_, err := f.svc.Login(context.Background(), auth.LoginRequest{Email: "dewi@example.com", Password: "password123"}, session)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.traces.opened)
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.LoginWithGoogle(context.Background(), "oauth@example.com", "google-123", session)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, []string{"oauth@example.com"}, f.users.linked)
	assert.Equal(t, []int64{8}, f.traces.opened)

	// already linked accounts are not linked again
	_, err = f.svc.LoginWithGoogle(context.Background(), "oauth@example.com", "google-123", session)
	require.NoError(t, err)
	assert.Len(t, f.users.linked, 1)

	_, err = f.svc.LoginWithGoogle(context.Background(), "oauth@example.com", "google-other", session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_LoginWithGoogle_NotProvisioned(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.LoginWithGoogle(context.Background(), "stranger@example.com", "google-9", session)
	assert.ErrorIs(t, err, auth.ErrAccountNotProvisioned)
	assert.Empty(t, f.traces.opened)
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login, err := f.svc.Login(ctx, auth.LoginRequest{Email: "dewi@example.com", Password: "password123"}, session)
	require.NoError(t, err)

	resp, err := f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// access tokens are not refresh tokens
	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	require.NoError(t, f.svc.RevokeRefreshToken(ctx, login.RefreshToken))
	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_RefreshToken_ExpiredInStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login, err := f.svc.Login(ctx, auth.LoginRequest{Email: "dewi@example.com", Password: "password123"}, session)
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestAuthService_RefreshToken_UnknownToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	require.NoError(t, err)
	token, _, err := jwtService.GenerateRefreshToken(7)
	require.NoError(t, err)

	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: token})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RevokeRefreshToken_EmptyIsNoop(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.RevokeRefreshToken(context.Background(), ""))
	assert.Empty(t, f.tokens.revoked)
}
