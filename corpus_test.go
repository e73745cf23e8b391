package main

import "testing"

func TestCrossScore(t *testing.T) {
	if got := crossScore("TEE"); got != 33 {
		t.Errorf("crossScore(TEE) = %d, want 33", got)
	}
	// Crossing-friendly letters must outscore rare ones.
	if crossScore("ATE") <= crossScore("JAB") {
		t.Error("expected ATE to outscore JAB")
	}
	if crossScore("QUIZ") >= crossScore("TONE") {
		t.Error("expected TONE to outscore QUIZ")
	}
}

func TestBuildTierGroupsByLength(t *testing.T) {
	c := BuildTier([]string{"CAT", "ATOM", "DOG", "STONE"}, TierStandard, nil)

	if got := len(c.WordsOfLength(3)); got != 2 {
		t.Errorf("3-letter group has %d entries, want 2", got)
	}
	if got := len(c.WordsOfLength(4)); got != 1 {
		t.Errorf("4-letter group has %d entries, want 1", got)
	}
	if !c.Contains("STONE") || c.Contains("BRICK") {
		t.Error("Contains misreports membership")
	}
	for _, e := range c.WordsOfLength(3) {
		if e.Score != crossScore(e.Word) {
			t.Errorf("entry %q has score %d, want %d", e.Word, e.Score, crossScore(e.Word))
		}
	}
}

func TestBuildTierStrictTruncates(t *testing.T) {
	base, err := BaseWordList()
	if err != nil {
		t.Fatalf("load base list: %v", err)
	}
	if len(base) <= strictTierSize {
		t.Fatalf("base list has %d words, need more than %d for this test", len(base), strictTierSize)
	}

	strict := BuildTier(base, TierStrict, nil)
	standard := BuildTier(base, TierStandard, nil)

	count := func(c *Corpus) int {
		n := 0
		for length := 2; length <= 10; length++ {
			n += len(c.WordsOfLength(length))
		}
		return n
	}
	if got := count(strict); got != strictTierSize {
		t.Errorf("strict tier has %d words, want %d", got, strictTierSize)
	}
	if count(standard) <= count(strict) {
		t.Error("standard tier should be larger than strict")
	}

	// The strict tier is the head of the list, so everything in it must
	// also be in the standard tier.
	for length := 2; length <= 10; length++ {
		for _, e := range strict.WordsOfLength(length) {
			if !standard.Contains(e.Word) {
				t.Errorf("strict word %q missing from standard tier", e.Word)
			}
		}
	}
}

func TestBuildTierExclusion(t *testing.T) {
	c := BuildTier([]string{"CAT", "DOG", "ATOM"}, TierStandard, map[string]bool{"CAT": true})

	if c.Contains("CAT") {
		t.Error("excluded word survived")
	}
	if !c.Contains("DOG") || !c.Contains("ATOM") {
		t.Error("non-excluded words dropped")
	}
}

func TestBuildTierExclusionRelaxed(t *testing.T) {
	// Excluding every 3-letter word would make the tier unsolvable by
	// construction; the exclusion must be relaxed for that group.
	c := BuildTier([]string{"CAT", "DOG", "ATOM"}, TierStandard,
		map[string]bool{"CAT": true, "DOG": true})

	if got := len(c.WordsOfLength(3)); got != 2 {
		t.Fatalf("3-letter group has %d entries after relaxation, want 2", got)
	}
	if !c.Contains("ATOM") {
		t.Error("unrelated group affected by relaxation")
	}
}
