package auth

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/rherren/eventsite/internal/model"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash should use argon2id format, got %q", hash)
	}
	if strings.Contains(hash, "secret123") {
		t.Error("hash must not contain the plaintext password")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := CheckPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !ok {
		t.Error("correct password should verify")
	}

	ok, err = CheckPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if ok {
		t.Error("wrong password should not verify")
	}
}

func TestCheckPasswordInvalidHash(t *testing.T) {
	if _, err := CheckPassword("pw", "not-a-hash"); err == nil {
		t.Error("expected error for malformed hash")
	}
	if _, err := CheckPassword("pw", "$bcrypt$v=19$m=1,t=1,p=1$aaaa$bbbb"); err == nil {
		t.Error("expected error for unsupported hash type")
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if NeedsRehash(hash) {
		t.Error("freshly created hash should not need rehash")
	}

	// Old parameters (64MB memory) should trigger a rehash.
	old := "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"
	if !NeedsRehash(old) {
		t.Error("hash with old parameters should need rehash")
	}

	if !NeedsRehash("garbage") {
		t.Error("malformed hash should need rehash")
	}
}

// fakeUserLookup implements UserLookup backed by a map.
type fakeUserLookup struct {
	users map[string]model.User
}

func (f *fakeUserLookup) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	u, ok := f.users[username]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func TestVerifyCredentials(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	users := &fakeUserLookup{users: map[string]model.User{
		"rherren": {ID: 1, Username: "rherren", PasswordHash: hash, Role: model.RoleAdmin},
	}}
	ctx := context.Background()

	user, err := VerifyCredentials(ctx, users, "rherren", "admin123")
	if err != nil {
		t.Fatalf("VerifyCredentials error: %v", err)
	}
	if user == nil {
		t.Fatal("expected user for correct credentials")
	}
	if user.ID != 1 {
		t.Errorf("user.ID = %d; want 1", user.ID)
	}

	user, err = VerifyCredentials(ctx, users, "rherren", "wrong")
	if err != nil || user != nil {
		t.Errorf("wrong password: got (%v, %v); want (nil, nil)", user, err)
	}

	user, err = VerifyCredentials(ctx, users, "nobody", "admin123")
	if err != nil || user != nil {
		t.Errorf("unknown user: got (%v, %v); want (nil, nil)", user, err)
	}
}
