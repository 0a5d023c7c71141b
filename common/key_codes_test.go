package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name   string
		want   uint32
		wantOK bool
	}{
		{"w", KeyW, true},
		{"space", KeySpace, true},
		{"leftshift", KeyLeftShift, true},
		{"kpadd", KeyKPAdd, true},
		{"z", 90, true},
		{"7", 55, true},
		{"W", 0, false},
		{"", 0, false},
		{"f13", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyCode(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
