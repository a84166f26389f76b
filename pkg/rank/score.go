// Package rank scores words and orders them by descending score.
package rank

import (
	"cmp"
	"strings"
	"unicode/utf8"
)

const (
	bonusPoints   = 5
	penaltyPoints = 7
)

// Scorer maps a word to its score.
type Scorer func(word string) int

// Comparator orders two words. A negative result sorts a before b.
type Comparator func(a, b string) int

// Score counts the characters of word that are not 'a'.
func Score(word string) int {
	return utf8.RuneCountInString(strings.ReplaceAll(word, "a", ""))
}

// Bonus awards points to words containing 'c'.
func Bonus(word string) int {
	if strings.ContainsRune(word, 'c') {
		return bonusPoints
	}
	return 0
}

// Penalty charges points to words containing 's'.
func Penalty(word string) int {
	if strings.ContainsRune(word, 's') {
		return penaltyPoints
	}
	return 0
}

// ScoreWithBonus is Score plus Bonus.
func ScoreWithBonus(word string) int {
	return Score(word) + Bonus(word)
}

// CombinedScore is Score plus Bonus minus Penalty.
func CombinedScore(word string) int {
	return Score(word) + Bonus(word) - Penalty(word)
}

// Sum returns a Scorer adding up the scores of all the given scorers.
func Sum(scorers ...Scorer) Scorer {
	return func(word string) int {
		total := 0
		for _, s := range scorers {
			total += s(word)
		}
		return total
	}
}

// Negate flips the sign of s, so Sum(Score, Negate(Penalty)) subtracts the penalty.
func Negate(s Scorer) Scorer {
	return func(word string) int {
		return -s(word)
	}
}

// Descending derives a Comparator placing higher scores first.
func Descending(s Scorer) Comparator {
	return func(a, b string) int {
		return cmp.Compare(s(b), s(a))
	}
}

// ScoreComparator places words with a higher Score first.
func ScoreComparator(a, b string) int {
	return Descending(Score)(a, b)
}

// ScoreWithBonusComparator places words with a higher ScoreWithBonus first.
func ScoreWithBonusComparator(a, b string) int {
	return Descending(ScoreWithBonus)(a, b)
}

// WordScores returns the score of each word in input order.
func WordScores(words []string, score Scorer) []int {
	scores := make([]int, 0, len(words))
	for _, w := range words {
		scores = append(scores, score(w))
	}
	return scores
}
