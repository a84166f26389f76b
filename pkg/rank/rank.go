package rank

import (
	"slices"
)

// DefaultThreshold is the reference cutoff used by HighScoring.
const DefaultThreshold = 1

// Ranked returns a copy of words ordered by descending Score.
func Ranked(words []string) []string {
	return RankedWith(ScoreComparator, words)
}

// RankedWith returns a copy of words ordered by the given comparator.
// Words the comparator considers equal keep their input order.
func RankedWith(compare Comparator, words []string) []string {
	items := slices.Clone(words)
	if items == nil {
		items = []string{}
	}
	slices.SortStableFunc(items, compare)
	return items
}

// RankedBy returns a copy of words ordered by descending score.
func RankedBy(score Scorer, words []string) []string {
	return RankedWith(Descending(score), words)
}

// HighScoring returns the words scoring above DefaultThreshold, in input order.
func HighScoring(words []string, score Scorer) []string {
	return HighScoringFunc(words, score)(DefaultThreshold)
}

// HighScoringFunc binds words and score, leaving the threshold for later.
// The returned function keeps words scoring strictly higher than the
// threshold, in input order. Later changes to the caller's slice are not seen.
func HighScoringFunc(words []string, score Scorer) func(higherThan int) []string {
	captured := slices.Clone(words)
	return func(higherThan int) []string {
		result := make([]string, 0, len(captured))
		for _, w := range captured {
			if score(w) > higherThan {
				result = append(result, w)
			}
		}
		return result
	}
}
