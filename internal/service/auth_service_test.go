package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"habits-be/internal/entities"
	"habits-be/internal/jwt"
	"habits-be/internal/models"
	"habits-be/internal/repository"
	"habits-be/internal/repository/mocks"
)

func hashPassword(t *testing.T, plaintext string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestLoginThenResolveYieldsSameUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	svc := NewAuthService(userRepo, jwtService)

	user := &entities.User{
		ID:           "user-1",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "hunter22"),
	}
	userRepo.EXPECT().FindByEmail("ana@example.com").Return(user, nil)

	resp, err := svc.Login(&models.LoginRequest{Email: "ana@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("TokenType = %q, want %q", resp.TokenType, "bearer")
	}

	subject, err := jwtService.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if subject != user.ID {
		t.Errorf("token subject = %q, want %q", subject, user.ID)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	svc := NewAuthService(userRepo, jwtService)

	// Unknown email
	userRepo.EXPECT().FindByEmail("nobody@example.com").Return(nil, repository.ErrNoRows)
	_, errUnknown := svc.Login(&models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	// Known email, wrong password
	user := &entities.User{
		ID:           "user-1",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "hunter22"),
	}
	userRepo.EXPECT().FindByEmail("ana@example.com").Return(user, nil)
	_, errWrongPass := svc.Login(&models.LoginRequest{Email: "ana@example.com", Password: "not-it"})

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("unknown email: error = %v, want ErrInvalidCredentials", errUnknown)
	}
	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Errorf("failure messages differ: %q vs %q", errUnknown.Error(), errWrongPass.Error())
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	svc := NewAuthService(userRepo, jwtService)

	userRepo.EXPECT().FindByEmail("ana@example.com").Return(nil, repository.ErrNoRows)

	var storedHash string
	userRepo.EXPECT().
		Create("ana@example.com", gomock.Any()).
		DoAndReturn(func(email, passwordHash string) (*entities.User, error) {
			storedHash = passwordHash
			return &entities.User{ID: "user-1", Email: email, PasswordHash: passwordHash}, nil
		})

	resp, err := svc.Register(&models.RegisterRequest{Email: "ana@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if resp.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", resp.UserID, "user-1")
	}

	if storedHash == "hunter22" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("hunter22")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	svc := NewAuthService(userRepo, jwtService)

	userRepo.EXPECT().
		FindByEmail("ana@example.com").
		Return(&entities.User{ID: "user-1", Email: "ana@example.com"}, nil)

	_, err := svc.Register(&models.RegisterRequest{Email: "ana@example.com", Password: "hunter22"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() error = %v, want ErrEmailTaken", err)
	}
}
