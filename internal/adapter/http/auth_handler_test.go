package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ashgrove-backend/internal/config"
	"ashgrove-backend/internal/domain/user"
	"ashgrove-backend/internal/testutil/usermock"
	"ashgrove-backend/internal/usecase/auth"
)

func loginRequest(h *AuthHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(nethttp.MethodPost, "/admin/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.Login(e.NewContext(req, rec))
	return rec
}

func authHandler(repo *usermock.Repo) *AuthHandler {
	cfg := &config.AuthConfig{JWTSecret: "test-secret-test-secret-test-secret!", TokenExpiryMinutes: 60}
	return NewAuthHandler(auth.NewUsecase(repo, cfg))
}

func TestLogin_Success(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: 7, Email: email, PasswordHash: hash, Roles: "admin"}, nil
		},
	}

	rec := loginRequest(authHandler(repo), `{"email":"admin@ashgrove.ie","password":"s3cret-pass"}`)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp auth.LoginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Token == "" || resp.User.ID != 7 || len(resp.User.Roles) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestLogin_FailureShapeIsUniform(t *testing.T) {
	hash, _ := auth.HashPassword("s3cret-pass")

	unknown := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	known := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: 7, Email: email, PasswordHash: hash}, nil
		},
	}

	recUnknown := loginRequest(authHandler(unknown), `{"email":"nobody@ashgrove.ie","password":"s3cret-pass"}`)
	recWrongPw := loginRequest(authHandler(known), `{"email":"admin@ashgrove.ie","password":"wrong"}`)

	for _, rec := range []*httptest.ResponseRecorder{recUnknown, recWrongPw} {
		if rec.Code != nethttp.StatusUnauthorized {
			t.Fatalf("code = %d, want 401", rec.Code)
		}
	}
	if recUnknown.Body.String() != recWrongPw.Body.String() {
		t.Fatalf("failure bodies differ:\n%s\n%s", recUnknown.Body.String(), recWrongPw.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	rec := loginRequest(authHandler(&usermock.Repo{}), `{"email":"admin@ashgrove.ie"}`)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
}

func TestLogout_AlwaysNoContent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/admin/auth/logout", nil)
	rec := httptest.NewRecorder()
	_ = authHandler(&usermock.Repo{}).Logout(e.NewContext(req, rec))
	if rec.Code != nethttp.StatusNoContent {
		t.Fatalf("code = %d, want 204", rec.Code)
	}
}
