package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

const (
	maxHeuristicSteps = 5
	maxHeuristicTips  = 3
)

// generatedContent is a structured routine extracted from free-form model
// output.
type generatedContent struct {
	Steps    []string `json:"steps"`
	Duration *int     `json:"duration"`
	Tips     []string `json:"tips"`
}

var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseGenerated turns untrusted model output into a structured record. It
// tries a strict JSON decode, then a decode of the first brace-delimited
// block, then a line heuristic. The heuristic always produces a result, so
// parsing never fails; structured reports whether a JSON strategy won.
func parseGenerated(raw string) (content generatedContent, structured bool) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		if c, ok := decodeContent(trimmed); ok {
			return c, true
		}
	} else if block := jsonBlockPattern.FindString(raw); block != "" {
		if c, ok := decodeContent(block); ok {
			return c, true
		}
	}

	return parseLines(raw), false
}

func decodeContent(block string) (generatedContent, bool) {
	var c generatedContent
	if err := json.Unmarshal([]byte(block), &c); err != nil {
		return generatedContent{}, false
	}
	return c, true
}

// parseLines scans plain text for numbered steps ("1. ..." through "9. ...")
// and tip lines ("Tip: ..."). Results are capped at 5 steps and 3 tips.
func parseLines(text string) generatedContent {
	var steps, tips []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isNumberedStep(line) {
			_, step, _ := strings.Cut(line, ".")
			steps = append(steps, strings.TrimSpace(step))
			continue
		}

		if strings.HasPrefix(strings.ToLower(line), "tip") {
			if _, tip, found := strings.Cut(line, ":"); found {
				tips = append(tips, strings.TrimSpace(tip))
			} else {
				tips = append(tips, line)
			}
		}
	}

	if len(steps) > maxHeuristicSteps {
		steps = steps[:maxHeuristicSteps]
	}
	if len(tips) > maxHeuristicTips {
		tips = tips[:maxHeuristicTips]
	}

	return generatedContent{Steps: steps, Tips: tips}
}

func isNumberedStep(line string) bool {
	return len(line) >= 2 && line[0] >= '1' && line[0] <= '9' && line[1] == '.'
}
