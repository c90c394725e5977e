package models

import (
	"time"
)

// User is created lazily on first successful Discord login and refreshed
// (username/avatar only) on every login after that.
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	DiscordID string    `gorm:"uniqueIndex;not null" json:"discord_id"`
	Username  string    `gorm:"not null" json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Email     *string   `gorm:"uniqueIndex" json:"email,omitempty"` // Discord only shares email with the email scope
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
