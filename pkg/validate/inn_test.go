package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsINN(t *testing.T) {
	tests := []struct {
		name  string
		inn   string
		valid bool
	}{
		{"Valid 10 digit inn", "7707083893", true},
		{"Valid 12 digit inn", "500100732259", true},
		{"Wrong check digit 10", "7707083894", false},
		{"Wrong check digit 12", "500100732258", false},
		{"Too short", "77070838", false},
		{"Too long", "77070838931234", false},
		{"Eleven digits", "77070838931", false},
		{"Non numeric", "77070838a3", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsINN(tt.inn))
		})
	}
}
