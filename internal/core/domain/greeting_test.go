package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "Good morning"},
		{6, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{23, "Good evening"},
		{24, "Good morning"},
		{-1, "Good evening"},
		{36, "Good afternoon"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Greeting(tt.hour), "hour %d", tt.hour)
	}
}
