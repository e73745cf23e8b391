package main

import (
	"github.com/sirupsen/logrus"
)

// Tier is a vocabulary quality level, tried in escalating order.
type Tier int

const (
	// TierStrict keeps only the most frequent part of the base list.
	TierStrict Tier = iota
	// TierStandard keeps the full base list.
	TierStandard
)

// strictTierSize is how many of the most frequent base entries TierStrict keeps.
const strictTierSize = 250

func (t Tier) String() string {
	if t == TierStandard {
		return "standard"
	}
	return "strict"
}

// AllTiers returns the tiers in escalation order.
func AllTiers() []Tier {
	return []Tier{TierStrict, TierStandard}
}

// WordEntry is a candidate word with its precomputed crossability score.
type WordEntry struct {
	Word  string
	Score int
}

// Corpus is a tiered, length-grouped candidate vocabulary.
type Corpus struct {
	Tier     Tier
	byLength map[int][]WordEntry
}

// letterWeights approximates English letter frequency; common crossing
// letters score high, rare ones low. Index 0 is 'A'.
var letterWeights = [26]int{
	8,  // A
	2,  // B
	3,  // C
	4,  // D
	12, // E
	2,  // F
	2,  // G
	6,  // H
	7,  // I
	1,  // J
	1,  // K
	4,  // L
	2,  // M
	7,  // N
	8,  // O
	2,  // P
	1,  // Q
	6,  // R
	6,  // S
	9,  // T
	3,  // U
	1,  // V
	2,  // W
	1,  // X
	2,  // Y
	1,  // Z
}

// crossScore sums per-letter frequency weights. Higher means the word's
// letters are easier to cross. Used for candidate ordering only.
func crossScore(word string) int {
	score := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'A' && c <= 'Z' {
			score += letterWeights[c-'A']
		}
	}
	return score
}

// BuildTier produces the length-grouped candidate set for one tier.
// The base list must be ordered most-frequent-first and normalized to
// uppercase. Words in exclude are dropped per length group, unless doing
// so would empty the group, in which case the exclusion for that group is
// relaxed and the override is logged.
func BuildTier(base []string, tier Tier, exclude map[string]bool) *Corpus {
	words := base
	if tier == TierStrict && len(words) > strictTierSize {
		words = words[:strictTierSize]
	}

	byLength := make(map[int][]WordEntry)
	excludedByLength := make(map[int]int)
	for _, w := range words {
		if exclude[w] {
			excludedByLength[len(w)]++
			continue
		}
		byLength[len(w)] = append(byLength[len(w)], WordEntry{Word: w, Score: crossScore(w)})
	}

	// A length group emptied purely by exclusion would make the tier
	// unsolvable by construction; relax the exclusion for that group.
	for length, dropped := range excludedByLength {
		if dropped == 0 || len(byLength[length]) > 0 {
			continue
		}
		logrus.WithFields(logrus.Fields{
			"tier":   tier.String(),
			"length": length,
		}).Warn("recent-use exclusion would empty length group, relaxing it")
		for _, w := range words {
			if len(w) == length && exclude[w] {
				byLength[length] = append(byLength[length], WordEntry{Word: w, Score: crossScore(w)})
			}
		}
	}

	return &Corpus{Tier: tier, byLength: byLength}
}

// WordsOfLength returns the retained entries for a length, frequency order.
func (c *Corpus) WordsOfLength(length int) []WordEntry {
	return c.byLength[length]
}

// Contains reports whether a word survived tiering and exclusion.
func (c *Corpus) Contains(word string) bool {
	for _, e := range c.byLength[len(word)] {
		if e.Word == word {
			return true
		}
	}
	return false
}
