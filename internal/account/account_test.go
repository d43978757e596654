package account

import (
	"context"
	"testing"
	"time"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/database/dbtest"
	"gamehub/backend/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(dbtest.New(t), logger.Nop(),
		WithClock(func() time.Time { return fixedNow }),
		WithHashCost(bcrypt.MinCost),
	)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestValidateDateOfBirth(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(0, 0, -100*365)
	latest := today.AddDate(0, 0, -5*365)

	tests := []struct {
		name    string
		dob     *time.Time
		wantErr bool
	}{
		{name: "absent", dob: nil},
		{name: "earliest allowed", dob: &earliest},
		{name: "one day too old", dob: ptr(earliest.AddDate(0, 0, -1)), wantErr: true},
		{name: "latest allowed", dob: &latest},
		{name: "one day too young", dob: ptr(latest.AddDate(0, 0, 1)), wantErr: true},
		{name: "born today", dob: &today, wantErr: true},
		{name: "adult", dob: dayPtr(1990, time.March, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateOfBirth(tt.dob, fixedNow)
			if tt.wantErr {
				var appErr *apperr.Error
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, apperr.KindValidation, appErr.Kind)
				assert.Equal(t, "date_of_birth", appErr.Field)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestRegister(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	player, err := svc.Register(ctx, RegisterInput{
		Username:    "  alice ",
		Email:       "alice@example.com",
		Password:    "correct horse",
		FirstName:   "Alice",
		DateOfBirth: dayPtr(2000, time.January, 10),
	})
	require.NoError(t, err)
	assert.NotZero(t, player.ID)
	assert.Equal(t, "alice", player.Username)
	assert.NotEqual(t, "correct horse", player.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte("correct horse")))
	require.NotNil(t, svc.Age(player))
	assert.Equal(t, 24, *svc.Age(player))

	noEmail, err := svc.Register(ctx, RegisterInput{Username: "bob", Password: "password123"})
	require.NoError(t, err)
	assert.Nil(t, noEmail.Email)
	assert.Nil(t, svc.Age(noEmail))

	// A second player without email must not collide on the unique index.
	_, err = svc.Register(ctx, RegisterInput{Username: "carol", Password: "password123"})
	require.NoError(t, err)
}

func TestRegister_Rejections(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		input     RegisterInput
		wantKind  apperr.Kind
		wantField string
	}{
		{"missing username", RegisterInput{Password: "password123"}, apperr.KindValidation, "username"},
		{"short password", RegisterInput{Username: "dave", Password: "short"}, apperr.KindValidation, "password"},
		{"bad email", RegisterInput{Username: "dave", Email: "not-an-email", Password: "password123"}, apperr.KindValidation, "email"},
		{"too young", RegisterInput{Username: "dave", Password: "password123", DateOfBirth: dayPtr(2023, time.January, 1)}, apperr.KindValidation, "date_of_birth"},
		{"duplicate username", RegisterInput{Username: "alice", Password: "password123"}, apperr.KindConflict, "username"},
		{"duplicate email", RegisterInput{Username: "dave", Email: "alice@example.com", Password: "password123"}, apperr.KindConflict, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantField, appErr.Field)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	registered, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	byName, err := svc.Authenticate(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byName.ID)

	byEmail, err := svc.Authenticate(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byEmail.ID)

	_, err = svc.Authenticate(ctx, "alice", "wrong-password")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	_, err = svc.Authenticate(ctx, "nobody", "password123")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.Authenticate(ctx, " ", "password123")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestUpdateProfile(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	player, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, player.ID, ProfileInput{
		FirstName:   "Alice",
		LastName:    "Liddell",
		DateOfBirth: dayPtr(1990, time.December, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "Liddell", updated.LastName)

	reloaded, err := svc.Get(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", reloaded.FirstName)
	require.NotNil(t, reloaded.DateOfBirth)
	assert.Equal(t, "1990-12-01", reloaded.DateOfBirth.Format(time.DateOnly))
	assert.Equal(t, 33, *svc.Age(reloaded))

	_, err = svc.UpdateProfile(ctx, player.ID, ProfileInput{DateOfBirth: dayPtr(1900, time.January, 1)})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	unchanged, err := svc.Get(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, "Liddell", unchanged.LastName)

	_, err = svc.UpdateProfile(ctx, 999, ProfileInput{})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	_, err = svc.Get(ctx, 999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
