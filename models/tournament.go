package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Tournament kinds. The kind fixes the team capacity: solo=1, duo=2, trio=3.
const (
	KindSolo = "solo"
	KindDuo  = "duo"
	KindTrio = "trio"
)

var kindSizes = map[string]int{
	KindSolo: 1,
	KindDuo:  2,
	KindTrio: 3,
}

// Legacy plural spellings still arrive from older clients.
var legacyKinds = map[string]string{
	"solos": KindSolo,
	"duos":  KindDuo,
	"trios": KindTrio,
}

// NormalizeKind maps a client-supplied kind (including the legacy plural
// spellings) onto its canonical value. ok is false for anything else.
func NormalizeKind(kind string) (string, bool) {
	if _, known := kindSizes[kind]; known {
		return kind, true
	}
	if canonical, legacy := legacyKinds[kind]; legacy {
		return canonical, true
	}
	return "", false
}

// TeamSizeForKind returns the maximum team size for a canonical kind.
func TeamSizeForKind(kind string) (int, bool) {
	size, ok := kindSizes[kind]
	return size, ok
}

type Tournament struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"index" json:"slug"`
	Kind        string    `gorm:"type:varchar(8);not null" json:"type"`
	MaxTeamSize int       `json:"max_team_size"`
	MaxTeams    int       `gorm:"default:0" json:"max_teams"` // 0 = unlimited
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	BannerURL   string    `json:"banner_url,omitempty"`
	CreatedByID string    `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	CreatedBy User   `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Teams     []Team `gorm:"foreignKey:TournamentID" json:"teams,omitempty"`
}

// BeforeSave recomputes MaxTeamSize from the kind on every write. The field
// is derived, never client-settable.
func (t *Tournament) BeforeSave(tx *gorm.DB) error {
	size, ok := TeamSizeForKind(t.Kind)
	if !ok {
		return fmt.Errorf("unsupported tournament kind %q", t.Kind)
	}
	t.MaxTeamSize = size
	return nil
}
