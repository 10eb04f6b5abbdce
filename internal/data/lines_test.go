package data

import (
	"database/sql"
	"testing"

	"github.com/rglass4/rematch/internal/assert"
)

func TestResolvePlayed(t *testing.T) {
	tests := []struct {
		name   string
		played sql.NullBool
		want   bool
	}{
		{
			name:   "Explicit True",
			played: sql.NullBool{Bool: true, Valid: true},
			want:   true,
		},
		{
			name:   "Explicit False",
			played: sql.NullBool{Bool: false, Valid: true},
			want:   false,
		},
		{
			name: "Null Means Played",
			// Rows predating the played_in_game column only exist because
			// the player recorded something, so they count as played.
			played: sql.NullBool{},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, resolvePlayed(tt.played), tt.want)
		})
	}
}

func TestGenerateLineValues(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  string
	}{
		{
			name:  "Single Row",
			count: 1,
			want:  "($1, $2, $3, $4, $5, $6)",
		},
		{
			name:  "Two Rows",
			count: 2,
			want:  "($1, $2, $3, $4, $5, $6), ($7, $8, $9, $10, $11, $12)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, generateLineValues(tt.count), tt.want)
		})
	}
}
