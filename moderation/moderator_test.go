package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// TestModerator_Censor
// The dictionary uses distinct words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"idiot", "loser", "scammer"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "you are an idiot",
			expected: "you are an *****",
			words:    []string{"idiot"},
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "idiot idiot idiot",
			expected: "***** ***** *****",
			words:    []string{"idiot", "idiot", "idiot"},
		},
		{
			name: "Leet speak substitution",
			// l . 0 -> o . 5 -> s . e . r
			input:    "What a l05er !",
			expected: "What a ***** !",
			words:    []string{"loser"},
		},
		{
			name:     "Uppercase and dotted noise",
			input:    "L-O-S-E-R meets an 1d10t",
			expected: "********* meets an *****",
			words:    []string{"loser", "idiot"},
		},
		{
			name:     "Accents around the match (UTF-8)",
			input:    "Méfiez-vous du scammer",
			expected: "Méfiez-vous du *******",
			words:    []string{"scammer"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "IDIOT!!!",
			expected: "*****!!!",
			words:    []string{"idiot"},
		},
		{
			name:     "Nothing to censor",
			input:    "welcome to the lobby",
			expected: "welcome to the lobby",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise in the dictionary and not Leet Speak associated
	dictionary := []string{"...", ",,,", "", "idiot"}

	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	// Then the sentence is censored
	input := "the idiot left the room"
	expected := "the ***** left the room"
	content, words := mod.Censor(input)
	req.Equal(expected, content)
	req.Equal([]string{"idiot"}, words)

	// Then real noise is uncensored
	input = "see you ..."
	expected = "see you ..."
	content, words = mod.Censor(input)
	req.Equal(expected, content)
	req.Nil(words)
}
