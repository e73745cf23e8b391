package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// maxClueAttempts is how many times a malformed Gemini response is retried.
const maxClueAttempts = 3

// ClueSet is the clue text for a solved grid, keyed by clue number.
type ClueSet struct {
	Theme  string
	Across map[int]string
	Down   map[int]string
}

// buildCluePrompt asks for a theme and one clue per solved word. The
// answers are already fixed; the model only writes clue text.
func buildCluePrompt(words []NumberedWord) string {
	var across, down []string
	for _, w := range words {
		line := fmt.Sprintf(`  - %d-%s: "%s" (%d letters)`, w.Number, w.Direction, w.Answer, len(w.Answer))
		if w.Direction == Across {
			across = append(across, line)
		} else {
			down = append(down, line)
		}
	}

	return fmt.Sprintf(`You are an expert crossword puzzle editor. Write clues for a solved 5x5 mini crossword.

The grid is already filled. Do NOT change any answer. Write one clever, concise clue per word.

Across answers:
%s
Down answers:
%s

Rules:
- Clues must match the given answer exactly, never mention the answer itself.
- Pick a short theme name that loosely ties the puzzle together.
- Respond ONLY with raw JSON, no markdown, in this format:
{
  "theme": "Your Theme",
  "clues": {
    "across": {"1": "Clue for 1-across"},
    "down": {"2": "Clue for 2-down"}
  }
}`, strings.Join(across, "\n"), strings.Join(down, "\n"))
}

// WriteClues asks Gemini for clue text for the solved words, retrying on
// malformed responses.
func (g *GeminiClient) WriteClues(ctx context.Context, words []NumberedWord) (*ClueSet, error) {
	prompt := buildCluePrompt(words)

	var lastErr error
	for attempt := 1; attempt <= maxClueAttempts; attempt++ {
		resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
			[]*genai.Content{{
				Role:  "user",
				Parts: []*genai.Part{{Text: prompt}},
			}},
			&genai.GenerateContentConfig{
				Temperature:      genai.Ptr(float32(0.7)),
				ResponseMIMEType: "application/json",
			},
		)
		if err != nil {
			lastErr = fmt.Errorf("gemini generate: %w", err)
			logrus.WithField("attempt", attempt).WithError(err).Warn("clue request failed")
			continue
		}

		clues, err := parseClueResponse(resp.Text(), words)
		if err != nil {
			lastErr = err
			logrus.WithField("attempt", attempt).WithError(err).Warn("clue response rejected")
			continue
		}
		return clues, nil
	}
	return nil, fmt.Errorf("clue writing failed after %d attempts: %w", maxClueAttempts, lastErr)
}

// parseClueResponse decodes the model output and checks a clue exists for
// every word.
func parseClueResponse(text string, words []NumberedWord) (*ClueSet, error) {
	text = stripCodeFence(text)
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var raw struct {
		Theme string `json:"theme"`
		Clues struct {
			Across map[string]string `json:"across"`
			Down   map[string]string `json:"down"`
		} `json:"clues"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse clue JSON: %w\nraw response: %s", err, text)
	}

	clues := &ClueSet{
		Theme:  raw.Theme,
		Across: make(map[int]string),
		Down:   make(map[int]string),
	}
	if clues.Theme == "" {
		clues.Theme = "Daily Puzzle"
	}
	for k, v := range raw.Clues.Across {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("bad across clue number %q", k)
		}
		clues.Across[n] = v
	}
	for k, v := range raw.Clues.Down {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("bad down clue number %q", k)
		}
		clues.Down[n] = v
	}

	for _, w := range words {
		m := clues.Across
		if w.Direction == Down {
			m = clues.Down
		}
		if strings.TrimSpace(m[w.Number]) == "" {
			return nil, fmt.Errorf("missing clue for %d-%s", w.Number, w.Direction)
		}
	}
	return clues, nil
}

// stripCodeFence removes a surrounding markdown code block, if present.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// PlaceholderClues produces deterministic definition-style clues for runs
// without a configured Gemini client.
func PlaceholderClues(words []NumberedWord) *ClueSet {
	clues := &ClueSet{
		Theme:  "Daily Puzzle",
		Across: make(map[int]string),
		Down:   make(map[int]string),
	}
	for _, w := range words {
		text := fmt.Sprintf("%d-letter word", len(w.Answer))
		if w.Direction == Across {
			clues.Across[w.Number] = text
		} else {
			clues.Down[w.Number] = text
		}
	}
	return clues
}
