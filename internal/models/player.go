package models

import "time"

// Player represents a registered user of the hub.
type Player struct {
	Model
	Username     string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email        *string    `gorm:"size:254;uniqueIndex" json:"email,omitempty"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	FirstName    string     `gorm:"size:150" json:"first_name"`
	LastName     string     `gorm:"size:150" json:"last_name"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	IsStaff      bool       `gorm:"not null;default:false" json:"is_staff"`
}

// Age returns the full years since DateOfBirth at now, or nil without a birth date.
func (p *Player) Age(now time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	dob := *p.DateOfBirth
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return &years
}
