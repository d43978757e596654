package models

const (
	MinScore = 1
	MaxScore = 10
)

// Rating is one player's score for one game. (PlayerID, GameID) is unique.
type Rating struct {
	Model
	PlayerID uint `gorm:"not null;uniqueIndex:idx_ratings_player_game,priority:1" json:"player_id"`
	GameID   uint `gorm:"not null;uniqueIndex:idx_ratings_player_game,priority:2;index" json:"game_id"`
	Score    int  `gorm:"not null;check:chk_ratings_score,score >= 1 AND score <= 10" json:"score"`

	Player *Player `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Game   *Game   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
