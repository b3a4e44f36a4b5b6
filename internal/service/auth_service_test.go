package service

import (
	"errors"
	"testing"

	"github.com/abhishek-8081/Brainly-Backend/internal/models"
	"github.com/abhishek-8081/Brainly-Backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// mockUsersRepo is a lightweight in-test mock for repository.Users.
type mockUsersRepo struct {
	CreateFn        func(username, hash string) (string, error)
	GetByUsernameFn func(username string) (*models.User, error)
	GetByIDFn       func(id string) (*models.User, error)

	createCalls []struct {
		username string
		hash     string
	}
	getCalls []string
}

func (m *mockUsersRepo) Create(username, hash string) (string, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(username, hash)
}

func (m *mockUsersRepo) GetByUsername(username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUsersRepo) GetByID(id string) (*models.User, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

const testSigningKey = "test-secret"

// --- SignUp tests ---

func TestAuthService_SignUp_HashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(username, hash string) (string, error) {
			return "user-42", nil
		},
	}
	svc := NewAuthService(mock, testSigningKey)

	id, err := svc.SignUp("alice", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if id != "user-42" {
		t.Fatalf("expected id user-42, got %q", id)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	stored := mock.createCalls[0].hash
	if stored == "s3cr3t" {
		t.Fatalf("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte("s3cr3t")); err != nil {
		t.Fatalf("stored hash does not verify against the password: %v", err)
	}
}

func TestAuthService_SignUp_EmptyPasswordRejected(t *testing.T) {
	svc := NewAuthService(&mockUsersRepo{}, testSigningKey)
	if _, err := svc.SignUp("alice", "   "); err == nil {
		t.Fatalf("expected error for blank password")
	}
}

func TestAuthService_SignUp_DuplicatePassesThrough(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(username, hash string) (string, error) {
			return "", repository.ErrUsernameTaken
		},
	}
	svc := NewAuthService(mock, testSigningKey)

	_, err := svc.SignUp("alice", "pw")
	if !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

// --- GenerateToken / ParseToken tests ---

func userWithPassword(t *testing.T, id, username, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &models.User{ID: id, Username: username, PasswordHash: string(hash)}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	u := userWithPassword(t, "user-7", "alice", "pw")
	mock := &mockUsersRepo{
		GetByUsernameFn: func(username string) (*models.User, error) { return u, nil },
	}
	svc := NewAuthService(mock, testSigningKey)

	token, err := svc.GenerateToken("alice", "pw")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if id != "user-7" {
		t.Fatalf("expected user-7, got %q", id)
	}
}

func TestAuthService_TokenHasNoExpiry(t *testing.T) {
	u := userWithPassword(t, "user-7", "alice", "pw")
	svc := NewAuthService(&mockUsersRepo{
		GetByUsernameFn: func(string) (*models.User, error) { return u, nil },
	}, testSigningKey)

	tokenStr, err := svc.GenerateToken("alice", "pw")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var claims Claims
	if _, err := jwt.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSigningKey), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("token must not carry an expiry, got %v", claims.ExpiresAt)
	}
}

func TestAuthService_GenerateToken_WrongPassword(t *testing.T) {
	u := userWithPassword(t, "user-7", "alice", "pw")
	svc := NewAuthService(&mockUsersRepo{
		GetByUsernameFn: func(string) (*models.User, error) { return u, nil },
	}, testSigningKey)

	if _, err := svc.GenerateToken("alice", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestAuthService_GenerateToken_UnknownUser(t *testing.T) {
	svc := NewAuthService(&mockUsersRepo{
		GetByUsernameFn: func(string) (*models.User, error) { return nil, nil },
	}, testSigningKey)

	if _, err := svc.GenerateToken("ghost", "pw"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ParseToken_WrongSecretRejected(t *testing.T) {
	u := userWithPassword(t, "user-7", "alice", "pw")
	issuer := NewAuthService(&mockUsersRepo{
		GetByUsernameFn: func(string) (*models.User, error) { return u, nil },
	}, "other-secret")

	token, err := issuer.GenerateToken("alice", "pw")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	verifier := NewAuthService(&mockUsersRepo{}, testSigningKey)
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("token signed with a different secret must be rejected")
	}
}

func TestAuthService_ParseToken_RejectsNonHMAC(t *testing.T) {
	// alg=none style tokens must never verify
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-7"})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := NewAuthService(&mockUsersRepo{}, testSigningKey)
	if _, err := svc.ParseToken(tokenStr); err == nil {
		t.Fatalf("unsigned token must be rejected")
	}
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := NewAuthService(&mockUsersRepo{}, testSigningKey)
	if _, err := svc.ParseToken("not-a-token"); err == nil {
		t.Fatalf("malformed token must be rejected")
	}
}
