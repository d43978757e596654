package models

import "time"

// WishlistEntry marks a game the player intends to play.
type WishlistEntry struct {
	PlayerID  uint `gorm:"primaryKey;autoIncrement:false"`
	GameID    uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time

	Player *Player `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Game   *Game   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// CompletedEntry marks a game the player has finished.
type CompletedEntry struct {
	PlayerID  uint `gorm:"primaryKey;autoIncrement:false"`
	GameID    uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time

	Player *Player `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Game   *Game   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
