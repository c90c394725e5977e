package models

import (
	"time"
)

// Team belongs to exactly one tournament. The creator is always a member and
// can only be removed by deleting the team.
type Team struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	TournamentID string    `gorm:"type:uuid;not null;index" json:"tournament_id"`
	CreatedByID  string    `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	Tournament Tournament `gorm:"foreignKey:TournamentID" json:"tournament,omitempty"`
	CreatedBy  User       `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Members    []User     `gorm:"many2many:team_members;" json:"members,omitempty"`
}

// TeamMember is the membership ledger and doubles as the join table behind
// Team.Members (registered via SetupJoinTable), so the member set and the
// ledger cannot drift apart. The composite primary key rejects duplicate
// joins at the store, which closes the concurrent double-join race.
type TeamMember struct {
	TeamID   string    `gorm:"primaryKey;type:uuid" json:"team_id"`
	UserID   string    `gorm:"primaryKey;type:uuid" json:"user_id"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
}
