package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]models.User{}, nextID: 1}
}

func (repo *fakeUserRepo) FindByID(userID uint) (models.User, error) {
	user, ok := repo.users[userID]
	if !ok {
		return models.User{}, errors.New("record not found")
	}
	return user, nil
}

func (repo *fakeUserRepo) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, errors.New("record not found")
}

func (repo *fakeUserRepo) ExistsByNormalizedEmail(email string) (bool, error) {
	_, err := repo.FindByNormalizedEmail(email)
	return err == nil, nil
}

func (repo *fakeUserRepo) Create(user *models.User) error {
	user.ID = repo.nextID
	repo.nextID++
	repo.users[user.ID] = *user
	return nil
}

func (repo *fakeUserRepo) UpdateByID(userID uint, updates map[string]any) error {
	user, ok := repo.users[userID]
	if !ok {
		return errors.New("record not found")
	}
	if name, ok := updates["name"].(string); ok {
		user.Name = name
	}
	if avatar, ok := updates["avatar"].(string); ok {
		user.Avatar = avatar
	}
	if bio, ok := updates["bio"].(string); ok {
		user.Bio = bio
	}
	if gender, ok := updates["gender"].(string); ok {
		user.Gender = gender
	}
	if dob, ok := updates["dob"].(string); ok {
		user.DOB = dob
	}
	repo.users[userID] = user
	return nil
}

func (repo *fakeUserRepo) UpdatePasswordHash(userID uint, passwordHash string) error {
	user, ok := repo.users[userID]
	if !ok {
		return errors.New("record not found")
	}
	user.PasswordHash = passwordHash
	repo.users[userID] = user
	return nil
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, []byte("test-secret")), repo
}

func TestSignUpNormalizesAndHashes(t *testing.T) {
	t.Parallel()

	service, repo := newTestAuthService()

	user, err := service.SignUp("Riya", "  Riya@Example.COM ", "Str0ngPass")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if user.Email != "riya@example.com" {
		t.Fatalf("email = %q, want normalized lower-case", user.Email)
	}
	if user.PasswordHash == "Str0ngPass" || user.PasswordHash == "" {
		t.Fatal("password stored without hashing")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ngPass")) != nil {
		t.Fatal("stored hash does not verify the password")
	}
	if !strings.Contains(user.Avatar, "riya%40example.com") {
		t.Fatalf("avatar seed missing from %q", user.Avatar)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected one stored user, got %d", len(repo.users))
	}
}

func TestSignUpRejections(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService()
	if _, err := service.SignUp("A", "me@example.com", "Str0ngPass"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "duplicate email", email: "ME@example.com", password: "Str0ngPass", wantErr: ErrEmailTaken},
		{name: "invalid email", email: "not-an-email", password: "Str0ngPass", wantErr: ErrAuthCredentialsInvalid},
		{name: "short password", email: "new@example.com", password: "Ab1", wantErr: ErrWeakPassword},
		{name: "no digit", email: "new@example.com", password: "Abcdefgh", wantErr: ErrWeakPassword},
		{name: "no upper case", email: "new@example.com", password: "abcdefg1", wantErr: ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.SignUp("B", tt.email, tt.password); !errors.Is(err, tt.wantErr) {
				t.Fatalf("SignUp() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSignInNeverRevealsWhichFieldFailed(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService()
	if _, err := service.SignUp("A", "me@example.com", "Str0ngPass"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if _, err := service.SignIn("me@example.com", "Str0ngPass"); err != nil {
		t.Fatalf("valid sign in: %v", err)
	}
	if _, err := service.SignIn("me@example.com", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want %v", err, ErrInvalidCredentials)
	}
	if _, err := service.SignIn("ghost@example.com", "Str0ngPass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestUpdateProfileTouchesOnlySetFields(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService()
	user, err := service.SignUp("A", "me@example.com", "Str0ngPass")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	bio := "night owl"
	updated, err := service.UpdateProfile(user.ID, models.ProfileUpdates{Bio: &bio})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Bio != "night owl" {
		t.Fatalf("bio = %q, want %q", updated.Bio, "night owl")
	}
	if updated.Name != "A" || updated.Email != "me@example.com" {
		t.Fatalf("unset fields changed: %+v", updated)
	}
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService()
	user, err := service.SignUp("A", "me@example.com", "Str0ngPass")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if err := service.ChangePassword(user.ID, "WrongPass1", "NextPass99"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong current password error = %v, want %v", err, ErrInvalidCredentials)
	}
	if err := service.ChangePassword(user.ID, "Str0ngPass", "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak new password error = %v, want %v", err, ErrWeakPassword)
	}
	if err := service.ChangePassword(user.ID, "Str0ngPass", "NextPass99"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := service.SignIn("me@example.com", "NextPass99"); err != nil {
		t.Fatalf("sign in with new password: %v", err)
	}
}

func TestResetTokenRoundTrip(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService()
	if _, err := service.SignUp("A", "me@example.com", "Str0ngPass"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	token, err := service.IssueResetToken("me@example.com", now)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token for a known email")
	}

	// unknown emails are indistinguishable from known ones to the caller
	ghost, err := service.IssueResetToken("ghost@example.com", now)
	if err != nil || ghost != "" {
		t.Fatalf("unknown email = (%q, %v), want empty token and nil error", ghost, err)
	}

	if err := service.ResetPassword(token, "NextPass99"); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if _, err := service.SignIn("me@example.com", "NextPass99"); err != nil {
		t.Fatalf("sign in after reset: %v", err)
	}

	if err := service.ResetPassword("garbage.token.here", "NextPass99"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("garbage token error = %v, want %v", err, ErrResetTokenInvalid)
	}
}
