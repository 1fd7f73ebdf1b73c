package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tickInterval(tt.rate), "rate %d", tt.rate)
	}
}
