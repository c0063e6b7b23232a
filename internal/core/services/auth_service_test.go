package services

import (
	"context"
	"errors"
	"testing"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/config"
	"schoolhub/internal/core/domain"
	"schoolhub/internal/pkg/token"

	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "test-secret"},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	ref := uint(3)
	user, err := svc.Register(ctx, &RegisterInput{
		Username:    "somchai",
		Password:    "secret123",
		Role:        "teacher",
		ReferenceID: &ref,
		Email:       "somchai@school.local",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != "teacher" {
		t.Errorf("expected role teacher, got %s", user.Role)
	}

	// Stored password must be a hash, not the plaintext
	stored := repo.users[user.ID]
	if stored.Password == "secret123" {
		t.Fatal("password stored as plaintext")
	}

	result, err := svc.Login(ctx, &LoginInput{Username: "somchai", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a session token")
	}
	if result.User.Username != "somchai" {
		t.Errorf("expected user somchai, got %s", result.User.Username)
	}

	claims, err := token.Verify(result.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected token user_id %d, got %d", user.ID, claims.UserID)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testConfig())

	_, err := svc.Register(context.Background(), &RegisterInput{
		Username: "somchai",
		Password: "secret123",
		Role:     "superuser",
		Email:    "somchai@school.local",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterInput{
		Username: "somchai", Password: "secret123", Role: "student", Email: "somchai@school.local",
	}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(ctx, &RegisterInput{
		Username: "somchai", Password: "other", Role: "student", Email: "new@school.local",
	})
	if !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Errorf("duplicate username: expected ErrDuplicateIdentity, got %v", err)
	}

	_, err = svc.Register(ctx, &RegisterInput{
		Username: "somsak", Password: "other", Role: "student", Email: "somchai@school.local",
	})
	if !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Errorf("duplicate email: expected ErrDuplicateIdentity, got %v", err)
	}
}

// Unknown username and wrong password must return the same error
func TestLoginUniformFailure(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterInput{
		Username: "somchai", Password: "secret123", Role: "student", Email: "somchai@school.local",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, errUnknown := svc.Login(ctx, &LoginInput{Username: "nobody", Password: "secret123"})
	_, errWrongPass := svc.Login(ctx, &LoginInput{Username: "somchai", Password: "wrong"})

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Errorf("unknown username: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errUnknown, errWrongPass) && errUnknown.Error() != errWrongPass.Error() {
		t.Error("expected identical failures for unknown username and wrong password")
	}
}

func TestGetUserByID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterInput{
		Username: "somchai", Password: "secret123", Role: "admin", Email: "somchai@school.local",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := svc.GetUserByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if user.Username != "somchai" {
		t.Errorf("expected somchai, got %s", user.Username)
	}

	if _, err := svc.GetUserByID(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
