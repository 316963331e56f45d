package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneratedStrictJSON(t *testing.T) {
	raw := `{"steps": ["Breathe deeply", "Stretch"], "duration": 10, "tips": ["Go slow"]}`

	content, structured := parseGenerated(raw)

	assert.True(t, structured)
	assert.Equal(t, []string{"Breathe deeply", "Stretch"}, content.Steps)
	require.NotNil(t, content.Duration)
	assert.Equal(t, 10, *content.Duration)
	assert.Equal(t, []string{"Go slow"}, content.Tips)
}

func TestParseGeneratedStrictJSONWithWhitespace(t *testing.T) {
	raw := "\n  {\"steps\": [\"Walk outside\"], \"tips\": []}  \n"

	content, structured := parseGenerated(raw)

	assert.True(t, structured)
	assert.Equal(t, []string{"Walk outside"}, content.Steps)
	assert.Nil(t, content.Duration)
}

func TestParseGeneratedEmbeddedJSON(t *testing.T) {
	raw := "Sure! Here is your routine:\n" +
		`{"steps": ["Drink water", "Rest"], "duration": 20, "tips": ["Stay hydrated"]}` +
		"\nHope this helps."

	content, structured := parseGenerated(raw)

	assert.True(t, structured)
	assert.Equal(t, []string{"Drink water", "Rest"}, content.Steps)
	require.NotNil(t, content.Duration)
	assert.Equal(t, 20, *content.Duration)
}

func TestParseGeneratedPlainTextHeuristic(t *testing.T) {
	raw := "Here is a routine for you:\n" +
		"1. Take five deep breaths\n" +
		"2. Write in your journal\n" +
		"3. Go for a short walk\n" +
		"Tip: keep your phone in another room\n" +
		"Tip: dim the lights"

	content, structured := parseGenerated(raw)

	assert.False(t, structured)
	assert.Equal(t, []string{
		"Take five deep breaths",
		"Write in your journal",
		"Go for a short walk",
	}, content.Steps)
	assert.Equal(t, []string{
		"keep your phone in another room",
		"dim the lights",
	}, content.Tips)
	assert.Nil(t, content.Duration)
}

func TestParseGeneratedHeuristicCaps(t *testing.T) {
	raw := "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n" +
		"Tip: one\nTip: two\nTip: three\nTip: four"

	content, structured := parseGenerated(raw)

	assert.False(t, structured)
	assert.Len(t, content.Steps, 5)
	assert.Len(t, content.Tips, 3)
}

func TestParseGeneratedTipWithoutColon(t *testing.T) {
	raw := "1. Stretch\ntip keep breathing"

	content, structured := parseGenerated(raw)

	assert.False(t, structured)
	assert.Equal(t, []string{"tip keep breathing"}, content.Tips)
}

func TestParseGeneratedNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t  ",
		"{not valid json",
		"{}",
		"complete prose with no structure at all",
		`{"steps": "not-an-array"}`,
	}

	for _, raw := range inputs {
		content, _ := parseGenerated(raw)
		assert.LessOrEqual(t, len(content.Steps), maxHeuristicSteps, "input: %q", raw)
		assert.LessOrEqual(t, len(content.Tips), maxHeuristicTips, "input: %q", raw)
	}
}

func TestParseGeneratedMalformedBraceBlockFallsThrough(t *testing.T) {
	// A brace block that is not valid JSON should still yield the line
	// heuristic result.
	raw := "{oops not json}\n1. Breathe\nTip: relax"

	content, structured := parseGenerated(raw)

	assert.False(t, structured)
	assert.Equal(t, []string{"Breathe"}, content.Steps)
	assert.Equal(t, []string{"relax"}, content.Tips)
}
