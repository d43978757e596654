// Package account registers and authenticates players and keeps their
// profiles.
package account

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	MinPasswordLength = 8
	maxUsernameLength = 150

	day        = 24 * time.Hour
	maxAgeDays = 100 * 365
	minAgeDays = 5 * 365
)

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
}

type ProfileInput struct {
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
}

type Service struct {
	db       *gorm.DB
	log      *logger.Logger
	now      func() time.Time
	hashCost int
}

type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithHashCost(cost int) Option {
	return func(s *Service) { s.hashCost = cost }
}

func NewService(db *gorm.DB, log *logger.Logger, opts ...Option) *Service {
	s := &Service{
		db:       db,
		log:      log.With(zap.String("service", "account")),
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateDateOfBirth accepts dates between 100*365 and 5*365 days before
// today, both inclusive. A missing date is valid.
func ValidateDateOfBirth(dob *time.Time, now time.Time) error {
	if dob == nil {
		return nil
	}
	today := dateOf(now)
	earliest := today.Add(-maxAgeDays * day)
	latest := today.Add(-minAgeDays * day)

	d := dateOf(*dob)
	if d.Before(earliest) || d.After(latest) {
		return apperr.Validation("date_of_birth", "date of birth must be between "+
			earliest.Format(time.DateOnly)+" and "+latest.Format(time.DateOnly))
	}
	return nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Player, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	switch {
	case username == "":
		return nil, apperr.Validation("username", "username is required")
	case len(username) > maxUsernameLength:
		return nil, apperr.Validation("username", "username must be at most 150 characters")
	case len(in.Password) < MinPasswordLength:
		return nil, apperr.Validation("password", "password must be at least 8 characters")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, apperr.Validation("email", "email is not valid")
		}
	}
	if err := ValidateDateOfBirth(in.DateOfBirth, s.now()); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	player := &models.Player{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		DateOfBirth:  normalizeDate(in.DateOfBirth),
	}
	if email != "" {
		player.Email = &email
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := exists(tx, "username", username)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("username", "username is already taken")
		}

		if email != "" {
			taken, err = exists(tx, "email", email)
			if err != nil {
				return err
			}
			if taken {
				return apperr.Conflict("email", "email is already registered")
			}
		}
		return tx.Create(player).Error
	})
	if err != nil {
		err = apperr.FromDB(err, "player", username)
		if apperr.Is(err, apperr.KindInternal) {
			s.log.Error("failed to register player", err, zap.String("username", username))
		}
		return nil, err
	}

	s.log.Info("player registered", zap.Uint("player_id", player.ID))
	return player, nil
}

func exists(tx *gorm.DB, column, value string) (bool, error) {
	var n int64
	err := tx.Model(&models.Player{}).Where(column+" = ?", value).Count(&n).Error
	return n > 0, err
}

// Authenticate finds the player by username or email and checks the password.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*models.Player, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, apperr.Validation("login", "login is required")
	}

	var player models.Player
	err := s.db.WithContext(ctx).Where("username = ? OR email = ?", login, login).First(&player).Error
	if err != nil {
		return nil, apperr.FromDB(err, "player", login)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.log.Warn("stored password hash is unusable", zap.Uint("player_id", player.ID), zap.Error(err))
		}
		return nil, apperr.Unauthorized("invalid credentials")
	}
	return &player, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Player, error) {
	var player models.Player
	if err := s.db.WithContext(ctx).First(&player, id).Error; err != nil {
		return nil, apperr.FromDB(err, "player", id)
	}
	return &player, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id uint, in ProfileInput) (*models.Player, error) {
	if err := ValidateDateOfBirth(in.DateOfBirth, s.now()); err != nil {
		return nil, err
	}

	player, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	player.FirstName = strings.TrimSpace(in.FirstName)
	player.LastName = strings.TrimSpace(in.LastName)
	player.DateOfBirth = normalizeDate(in.DateOfBirth)

	err = s.db.WithContext(ctx).Model(player).
		Select("first_name", "last_name", "date_of_birth").
		Updates(player).Error
	if err != nil {
		return nil, apperr.FromDB(err, "player", id)
	}
	return player, nil
}

// Age is the player's age today.
func (s *Service) Age(player *models.Player) *int {
	return player.Age(s.now())
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dateOf(*t)
	return &d
}
