package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/zyreejago/hidroponik/pkg/auth"
	"github.com/zyreejago/hidroponik/pkg/auth/session"
	"github.com/zyreejago/hidroponik/pkg/config"
	"github.com/zyreejago/hidroponik/pkg/db/models"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
	"github.com/zyreejago/hidroponik/pkg/logger"
	"github.com/zyreejago/hidroponik/pkg/security"
)

const minPasswordLength = 8

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

type loginLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// LoginInput carries the credentials plus the caller's IP for rate limiting.
type LoginInput struct {
	Email    string
	Password string
	ClientIP string
}

// SetupInput bootstraps the very first back-office account.
type SetupInput struct {
	Email    string
	Password string
	FullName string
}

// Session is an authenticated admin plus their token pair.
type Session struct {
	Admin        *models.AdminUser
	AccessToken  string
	RefreshToken string
}

// Service handles back-office authentication.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*Session, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*Session, error)
	Logout(ctx context.Context, accessID string) error
	Setup(ctx context.Context, input SetupInput) (*models.AdminUser, error)
}

type service struct {
	repo     Repository
	sessions sessionManager
	limiter  loginLimiter
	logg     *logger.Logger
	app      config.AppConfig
	jwt      config.JWTConfig
	password config.PasswordConfig
	rate     config.AuthRateLimitConfig

	now func() time.Time
}

func NewService(
	repo Repository,
	sessions sessionManager,
	limiter loginLimiter,
	logg *logger.Logger,
	app config.AppConfig,
	jwtCfg config.JWTConfig,
	passwordCfg config.PasswordConfig,
	rateCfg config.AuthRateLimitConfig,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admin repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	if limiter == nil {
		return nil, fmt.Errorf("login limiter required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     repo,
		sessions: sessions,
		limiter:  limiter,
		logg:     logg,
		app:      app,
		jwt:      jwtCfg,
		password: passwordCfg,
		rate:     rateCfg,
		now:      time.Now,
	}, nil
}

func (s *service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	if err := s.allowLoginAttempt(ctx, email, input.ClientIP); err != nil {
		return nil, err
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up admin")
	}
	if !admin.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	ok, err := security.VerifyPassword(input.Password, admin.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	sess, err := s.issueSession(ctx, admin)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, admin.ID, s.now()); err != nil {
		s.logg.Warn(s.logg.WithAdminID(ctx, admin.ID.String()), "failed to record last login")
	}

	return sess, nil
}

func (s *service) Refresh(ctx context.Context, accessToken, refreshToken string) (*Session, error) {
	if strings.TrimSpace(accessToken) == "" || strings.TrimSpace(refreshToken) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
	}

	// The access token may be expired here, only its signature and jti matter.
	claims, err := auth.ParseAccessTokenAllowExpired(s.jwt, accessToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
	}

	newAccessID, newRefresh, err := s.sessions.Rotate(ctx, claims.ID, refreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotating session")
	}

	admin, err := s.repo.FindByID(ctx, claims.AdminID)
	if err != nil || !admin.IsActive {
		// The rotated session is unusable for a missing or disabled account.
		_ = s.sessions.Revoke(ctx, newAccessID)
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
	}

	access, err := auth.MintAccessToken(s.jwt, s.now(), auth.AccessTokenPayload{
		AdminID: admin.ID,
		Email:   admin.Email,
		JTI:     newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	return &Session{Admin: admin, AccessToken: access, RefreshToken: newRefresh}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session")
	}
	return nil
}

// Setup creates the first admin account. It refuses to run in production and
// once any account exists.
func (s *service) Setup(ctx context.Context, input SetupInput) (*models.AdminUser, error) {
	if s.app.IsProd() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "setup is disabled")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	fullName := strings.TrimSpace(input.FullName)
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
	}
	if fullName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "full name is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting admins")
	}
	if count > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "setup is disabled")
	}

	hash, err := security.HashPassword(input.Password, s.password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	created, err := s.repo.Create(ctx, &models.AdminUser{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		IsActive:     true,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating admin")
	}
	return created, nil
}

func (s *service) allowLoginAttempt(ctx context.Context, email, clientIP string) error {
	scopes := []struct {
		scope string
		limit int64
	}{
		{scope: "login:email:" + email, limit: int64(s.rate.LoginEmailLimit)},
	}
	if ip := strings.TrimSpace(clientIP); ip != "" {
		scopes = append(scopes, struct {
			scope string
			limit int64
		}{scope: "login:ip:" + ip, limit: int64(s.rate.LoginIPLimit)})
	}

	for _, sc := range scopes {
		if sc.limit <= 0 {
			continue
		}
		allowed, _, err := s.limiter.FixedWindowAllow(ctx, sc.scope, sc.limit, s.rate.LoginWindow)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking login rate limit")
		}
		if !allowed {
			return pkgerrors.New(pkgerrors.CodeRateLimit, "too many login attempts")
		}
	}
	return nil
}

func (s *service) issueSession(ctx context.Context, admin *models.AdminUser) (*Session, error) {
	accessID := session.NewAccessID()

	access, err := auth.MintAccessToken(s.jwt, s.now(), auth.AccessTokenPayload{
		AdminID: admin.ID,
		Email:   admin.Email,
		JTI:     accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	refresh, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing session")
	}

	return &Session{Admin: admin, AccessToken: access, RefreshToken: refresh}, nil
}
