package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
	"github.com/wanderlist-dev/wanderlist/pkg/auth/token"
	"github.com/wanderlist-dev/wanderlist/pkg/storage/memory"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	tokens, err := token.NewService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token.NewService: %v", err)
	}
	return NewService(memory.New(), tokens)
}

func validRegister() *api.RegisterRequest {
	return &api.RegisterRequest{
		Surname:   "Liddell",
		GivenName: "Alice",
		DOB:       "1990-05-04",
		Username:  "alice",
		Email:     "alice@x.com",
		Password:  "pw123",
	}
}

func TestRegister_Success(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if resp.Token == "" {
		t.Error("expected non-empty token")
	}
	if !api.ValidateUserID(resp.User.ID) {
		t.Errorf("claims id %q is not a well-formed user ID", resp.User.ID)
	}
	if resp.User.Username != "alice" || resp.User.Email != "alice@x.com" {
		t.Errorf("claims = %+v, want alice/alice@x.com", resp.User)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService(t)

	req := validRegister()
	req.Surname = ""
	req.Password = ""

	_, err := svc.Register(context.Background(), req)

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Type != api.ErrorTypeValidation {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(apiErr.Fields) != 2 || apiErr.Fields[0] != "surname" || apiErr.Fields[1] != "password" {
		t.Errorf("fields = %v, want [surname password]", apiErr.Fields)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Same username, different email.
	req := validRegister()
	req.Email = "alice2@x.com"

	_, err := svc.Register(context.Background(), req)

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Type != api.ErrorTypeDuplicateIdentity {
		t.Errorf("err = %v, want duplicate identity", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Same email, different username.
	req := validRegister()
	req.Username = "alice2"

	_, err := svc.Register(context.Background(), req)

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Type != api.ErrorTypeDuplicateIdentity {
		t.Errorf("err = %v, want duplicate identity", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t)

	reg, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(context.Background(), &api.LoginRequest{
		Email:    "alice@x.com",
		Password: "pw123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.User.ID != reg.User.ID {
		t.Errorf("login claims id = %q, want %q", resp.User.ID, reg.User.ID)
	}
	if resp.Token == "" {
		t.Error("expected non-empty token")
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), &api.LoginRequest{
		Email:    "alice@x.com",
		Password: "wrong",
	})
	_, unknownEmail := svc.Login(context.Background(), &api.LoginRequest{
		Email:    "nobody@x.com",
		Password: "pw123",
	})

	var errA, errB *api.APIError
	if !errors.As(wrongPassword, &errA) || !errors.As(unknownEmail, &errB) {
		t.Fatalf("expected APIErrors, got %v / %v", wrongPassword, unknownEmail)
	}
	if errA.Type != api.ErrorTypeInvalidCredentials {
		t.Errorf("wrong password type = %s, want invalid_credentials", errA.Type)
	}
	if errA.Type != errB.Type || errA.Message != errB.Message {
		t.Errorf("errors differ: %v vs %v", errA, errB)
	}
}

func TestPasswordHash_NeverPlaintext(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if string(hash) == "pw123" {
		t.Error("hash must not equal plaintext")
	}
	if !ComparePassword(hash, "pw123") {
		t.Error("ComparePassword rejected the correct password")
	}
	if ComparePassword(hash, "pw124") {
		t.Error("ComparePassword accepted a wrong password")
	}
}
