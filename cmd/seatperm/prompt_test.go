package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dusk-indust/seatperm/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBounded(t *testing.T) {
	tests := []struct {
		raw   string
		bound int
		want  int
		ok    bool
	}{
		{"5", noBound, 5, true},
		{" 0 ", noBound, 0, true},
		{"-1", noBound, 0, false},
		{"abc", noBound, 0, false},
		{"", noBound, 0, false},
		{"3.5", noBound, 0, false},
		{"7", 7, 7, true},
		{"8", 7, 0, false},
	}
	for _, tt := range tests {
		got, ok := parseBounded(tt.raw, tt.bound)
		assert.Equal(t, tt.ok, ok, "raw=%q bound=%d", tt.raw, tt.bound)
		assert.Equal(t, tt.want, got, "raw=%q bound=%d", tt.raw, tt.bound)
	}
}

func TestPromptConfig(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("6\n2\n3\n4\n"), &out)

	cfg := config.Default()
	require.NoError(t, promptConfig(p, &cfg))

	assert.Equal(t, 6, cfg.Seats)
	assert.Equal(t, 2, cfg.StartingMatches)
	assert.Equal(t, 3, cfg.Threshold)
	assert.Equal(t, 4, cfg.Limit)
	assert.Contains(t, out.String(), "Enter the minimum number of matches required to get funded: ")
}

func TestPromptConfig_AtMostWording(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("4\n2\n2\n1\n"), &out)

	cfg := config.Default()
	cfg.Policy = "at-most"
	require.NoError(t, promptConfig(p, &cfg))
	assert.Contains(t, out.String(), "Enter the maximum number of allowed matches: ")
}

func TestPromptConfig_RepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("x\n-3\n13\n5\n6\n0\nzz\n1\n1\n"), &out)

	cfg := config.Default()
	require.NoError(t, promptConfig(p, &cfg))

	assert.Equal(t, 5, cfg.Seats)
	assert.Equal(t, 0, cfg.StartingMatches)
	assert.Equal(t, 1, cfg.Threshold)
	assert.Equal(t, 1, cfg.Limit)
	assert.Equal(t, 3, strings.Count(out.String(), "less than or equal to 10"))
}
