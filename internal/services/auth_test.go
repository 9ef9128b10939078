package services

import (
	"errors"
	"testing"

	"github.com/borantia/backend/internal/config"
	"github.com/borantia/backend/internal/models"
	"github.com/borantia/backend/internal/utils"
)

func newAuthService(t *testing.T, name string) *AuthService {
	t.Helper()
	utils.SetJWTSecret("test-secret")
	db := newTestDB(t, name)
	return NewAuthService(db, &config.JWTConfig{Secret: "test-secret", ExpireHour: 1})
}

func TestRegisterUserAndLogin(t *testing.T) {
	svc := newAuthService(t, "auth_register_user")

	result, err := svc.RegisterUser(&RegisterUserRequest{
		Name:     "Hanako",
		Email:    "hanako@example.com",
		Password: "password123",
		Address:  "Tokyo",
	})
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("registration should issue a token")
	}
	if result.Role != models.RoleUser {
		t.Errorf("Role = %q, expected user", result.Role)
	}

	login, err := svc.Login(&LoginRequest{
		Email:    "hanako@example.com",
		Password: "password123",
		Role:     models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := utils.ParseToken(login.AccessToken)
	if err != nil {
		t.Fatalf("issued token should parse: %v", err)
	}
	if claims.Role != models.RoleUser {
		t.Errorf("token role = %q, expected user", claims.Role)
	}
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	svc := newAuthService(t, "auth_hash")

	if _, err := svc.RegisterUser(&RegisterUserRequest{
		Name:     "Hanako",
		Email:    "hanako@example.com",
		Password: "password123",
		Address:  "Tokyo",
	}); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	var user models.User
	svc.db.Where("email = ?", "hanako@example.com").First(&user)
	if user.Password == "password123" {
		t.Error("password must not be stored in plaintext")
	}
	if !utils.CheckPassword(user.Password, "password123") {
		t.Error("stored hash should verify against the original password")
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t, "auth_dup_email")

	req := &RegisterUserRequest{
		Name:     "Hanako",
		Email:    "hanako@example.com",
		Password: "password123",
		Address:  "Tokyo",
	}
	if _, err := svc.RegisterUser(req); err != nil {
		t.Fatalf("first RegisterUser failed: %v", err)
	}
	if _, err := svc.RegisterUser(req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterOrganization(t *testing.T) {
	svc := newAuthService(t, "auth_register_org")

	result, err := svc.RegisterOrganization(&RegisterOrganizationRequest{
		Name:     "Green Hands",
		Email:    "org@example.com",
		Password: "password123",
		Address:  "Osaka",
	})
	if err != nil {
		t.Fatalf("RegisterOrganization failed: %v", err)
	}
	if result.Role != models.RoleOrganization {
		t.Errorf("Role = %q, expected organization", result.Role)
	}
}

func TestLogin_Failures(t *testing.T) {
	svc := newAuthService(t, "auth_login_fail")

	if _, err := svc.RegisterUser(&RegisterUserRequest{
		Name:     "Hanako",
		Email:    "hanako@example.com",
		Password: "password123",
		Address:  "Tokyo",
	}); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	cases := []struct {
		name string
		req  LoginRequest
	}{
		{"wrong password", LoginRequest{Email: "hanako@example.com", Password: "wrong", Role: models.RoleUser}},
		{"unknown email", LoginRequest{Email: "nobody@example.com", Password: "password123", Role: models.RoleUser}},
		{"wrong role table", LoginRequest{Email: "hanako@example.com", Password: "password123", Role: models.RoleOrganization}},
	}
	for _, tc := range cases {
		if _, err := svc.Login(&tc.req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}
