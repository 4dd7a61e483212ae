package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharely/sharely/pkg/helpers"
)

func newUserService(t *testing.T) (*UserService, *fakeUserRepo, *fakeAuth, *fakeVerifier) {
	t.Helper()
	repo := newFakeUserRepo()
	auth := &fakeAuth{}
	verifier := &fakeVerifier{}
	return NewUserService(repo, auth, verifier, nil), repo, auth, verifier
}

func registerVerified(t *testing.T, svc *UserService, repo *fakeUserRepo, email, password string) int64 {
	t.Helper()
	resp, err := svc.Register(context.Background(), RegisterInput{Name: "Test", Email: email, Password: password})
	require.NoError(t, err)
	require.NoError(t, repo.SetEmailVerified(context.Background(), resp.ID, time.Now()))
	return resp.ID
}

func TestUserService_Register(t *testing.T) {
	svc, repo, _, verifier := newUserService(t)

	resp, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotZero(t, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)

	u, err := repo.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.False(t, u.HasVerifiedEmail(), "registration must not auto-verify")
	assert.NotEqual(t, "secret123", u.Password, "password must be stored hashed")
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "secret123"))

	assert.Equal(t, []int64{resp.ID}, verifier.sent, "exactly one verification email")
}

func TestUserService_Register_VerifierFailureDoesNotFailRegistration(t *testing.T) {
	svc, repo, _, verifier := newUserService(t)
	verifier.fail = true

	resp, err := svc.Register(context.Background(), RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), resp.ID)
	assert.NoError(t, err, "user must be persisted even when dispatch fails")
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newUserService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_WrongPasswordBeforeVerificationCheck(t *testing.T) {
	// An unverified user with a wrong password must see the credential
	// error, never the verification error.
	svc, _, _, _ := newUserService(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Carol", Email: "carol@example.com", Password: "rightpass1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "carol@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_UnverifiedEmail(t *testing.T) {
	svc, _, auth, _ := newUserService(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Dave", Email: "dave@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "dave@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
	assert.Zero(t, auth.issued, "no token may be issued before verification")
}

func TestUserService_Login_Success(t *testing.T) {
	svc, repo, auth, _ := newUserService(t)
	id := registerVerified(t, svc, repo, "erin@example.com", "secret123")

	resp, err := svc.Login(context.Background(), "erin@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, id, resp.UserID)
	assert.Equal(t, "erin@example.com", resp.Email)
	assert.Equal(t, 1, auth.issued)
}

func TestUserService_Login_TokenBackendFailure(t *testing.T) {
	svc, repo, auth, _ := newUserService(t)
	registerVerified(t, svc, repo, "frank@example.com", "secret123")
	auth.fail = true

	_, err := svc.Login(context.Background(), "frank@example.com", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, ErrEmailNotVerified)
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc, _, _, _ := newUserService(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Update_PartialPatch(t *testing.T) {
	svc, repo, _, _ := newUserService(t)
	id := registerVerified(t, svc, repo, "gina@example.com", "secret123")

	before, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	newName := "Gina Renamed"
	resp, err := svc.Update(context.Background(), id, UpdateUserInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, resp.Name)
	assert.Equal(t, "gina@example.com", resp.Email, "absent email must stay untouched")

	after, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, before.Password, after.Password, "absent password must stay untouched")
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt) || after.UpdatedAt.Equal(before.UpdatedAt))
}

func TestUserService_Update_PasswordRehash(t *testing.T) {
	svc, repo, _, _ := newUserService(t)
	id := registerVerified(t, svc, repo, "hugo@example.com", "oldpass12")

	newPass := "newpass34"
	_, err := svc.Update(context.Background(), id, UpdateUserInput{Password: &newPass})
	require.NoError(t, err)

	u, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, newPass))
	assert.False(t, helpers.CompareHashAndPassword(u.Password, "oldpass12"))
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, _, _, _ := newUserService(t)
	name := "x"

	_, err := svc.Update(context.Background(), 404, UpdateUserInput{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	svc, repo, _, _ := newUserService(t)
	id := registerVerified(t, svc, repo, "iris@example.com", "secret123")

	require.NoError(t, svc.Delete(context.Background(), id))

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), ErrUserNotFound)
}

func TestUserService_ResponseNeverContainsPassword(t *testing.T) {
	svc, _, _, _ := newUserService(t)

	resp, err := svc.Register(context.Background(), RegisterInput{
		Name: "Judy", Email: "judy@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	// UserResponse carries no password field at all; assert the rendered
	// timestamps instead of reflection gymnastics.
	_, perr := time.Parse(TimeLayout, resp.CreatedAt)
	assert.NoError(t, perr)
	_, perr = time.Parse(TimeLayout, resp.UpdatedAt)
	assert.NoError(t, perr)
}
