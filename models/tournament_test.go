package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKind(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"solo", KindSolo, true},
		{"duo", KindDuo, true},
		{"trio", KindTrio, true},
		{"solos", KindSolo, true},
		{"duos", KindDuo, true},
		{"trios", KindTrio, true},
		{"squad", "", false},
		{"", "", false},
		{"DUO", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeKind(tt.in)
		assert.Equal(t, tt.ok, ok, "kind %q", tt.in)
		assert.Equal(t, tt.want, got, "kind %q", tt.in)
	}
}

func TestTeamSizeForKind(t *testing.T) {
	sizes := map[string]int{KindSolo: 1, KindDuo: 2, KindTrio: 3}
	for kind, want := range sizes {
		got, ok := TeamSizeForKind(kind)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := TeamSizeForKind("duos") // legacy spellings must be normalized first
	assert.False(t, ok)
}

func TestTournamentBeforeSaveDerivesMaxTeamSize(t *testing.T) {
	tournament := &Tournament{Name: "Friday Cup", Kind: KindTrio}
	require.NoError(t, tournament.BeforeSave(nil))
	assert.Equal(t, 3, tournament.MaxTeamSize)

	// A client-supplied value is always overwritten.
	tournament.Kind = KindSolo
	tournament.MaxTeamSize = 99
	require.NoError(t, tournament.BeforeSave(nil))
	assert.Equal(t, 1, tournament.MaxTeamSize)
}

func TestTournamentBeforeSaveRejectsUnknownKind(t *testing.T) {
	tournament := &Tournament{Name: "Bad Cup", Kind: "quads"}
	assert.Error(t, tournament.BeforeSave(nil))
}
