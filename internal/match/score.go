package match

import (
	"strings"
	"unicode/utf8"
)

// Tier scores. The word tier adds per matching word pair and is unbounded,
// but realistic titles stay far below ScoreContains.
const (
	ScoreExact    = 1000
	ScorePrefix   = 800
	ScoreContains = 600

	scoreWordPrefix   = 100
	scoreWordContains = 50

	// search words shorter than this are ignored by the word tier
	minWordLen = 2
)

// Score rates how well title matches term. Higher is better, 0 means no
// match. The first matching tier wins: exact, prefix, substring, then the
// per-word tier.
func Score(term, title string) int {
	t := Normalize(term)
	c := Normalize(title)

	switch {
	case c == t:
		return ScoreExact
	case strings.HasPrefix(c, t):
		return ScorePrefix
	case strings.Contains(c, t):
		return ScoreContains
	}
	return wordScore(strings.Fields(t), strings.Fields(c))
}

// wordScore credits every (search word, title word) pair; a search word can
// be rewarded by several title words.
func wordScore(searchWords, titleWords []string) int {
	score := 0
	for _, sw := range searchWords {
		if utf8.RuneCountInString(sw) < minWordLen {
			continue
		}
		for _, tw := range titleWords {
			if strings.HasPrefix(tw, sw) {
				score += scoreWordPrefix
			} else if strings.Contains(tw, sw) {
				score += scoreWordContains
			}
		}
	}
	return score
}
