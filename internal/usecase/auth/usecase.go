package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"ashgrove-backend/internal/config"
	"ashgrove-backend/internal/domain/user"
)

// ErrInvalidCredentials is returned for every login failure so the
// response never reveals whether the email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID uint64   `json:"userId"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

type AuthenticatedUser struct {
	ID    uint64   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type LoginResult struct {
	Token string            `json:"token"`
	User  AuthenticatedUser `json:"user"`
}

type Usecase struct {
	users user.Repository
	cfg   *config.AuthConfig
	now   func() time.Time
}

func NewUsecase(users user.Repository, cfg *config.AuthConfig) *Usecase {
	return &Usecase{users: users, cfg: cfg, now: time.Now}
}

// Authenticate checks the credentials and issues a signed token. All
// failure modes collapse into ErrInvalidCredentials.
func (u *Usecase) Authenticate(ctx context.Context, email, password string) (*LoginResult, error) {
	acct, err := u.users.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, user.ErrNotFound) {
			log.Printf("[AUTH] lookup failed: %v", err)
		}
		return nil, ErrInvalidCredentials
	}

	ok, err := VerifyPassword(password, acct.PasswordHash)
	if err != nil || !ok {
		if err != nil {
			log.Printf("[AUTH] verify failed for user %d: %v", acct.ID, err)
		}
		return nil, ErrInvalidCredentials
	}

	now := u.now().UTC()
	acct.LastLoginAt = &now
	if err := u.users.Save(ctx, acct); err != nil {
		// Login still succeeds; the timestamp is best-effort.
		log.Printf("[AUTH] failed to record last login for user %d: %v", acct.ID, err)
	}

	token, err := u.issueToken(acct, now)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &LoginResult{
		Token: token,
		User: AuthenticatedUser{
			ID:    acct.ID,
			Email: acct.Email,
			Roles: acct.RoleList(),
		},
	}, nil
}

func (u *Usecase) issueToken(acct *user.User, now time.Time) (string, error) {
	claims := Claims{
		UserID: acct.ID,
		Email:  acct.Email,
		Roles:  acct.RoleList(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(u.cfg.TokenExpiryMinutes) * time.Minute)),
			Subject:   fmt.Sprintf("%d", acct.ID),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
}

// VerifyToken parses and validates a bearer token. The caller gets a
// single opaque error; expired vs malformed only shows up in logs.
func (u *Usecase) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(u.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		if err != nil && errors.Is(err, jwt.ErrTokenExpired) {
			log.Printf("[AUTH] rejected expired token")
		}
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// CreateUser registers an account with a hashed password. Emails are
// normalized before the uniqueness check.
func (u *Usecase) CreateUser(ctx context.Context, email, password string, roles []string) (*user.User, error) {
	email = user.NormalizeEmail(email)
	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	acct := &user.User{Email: email, PasswordHash: hash}
	acct.SetRoles(roles)
	if err := u.users.Create(ctx, acct); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return acct, nil
}
