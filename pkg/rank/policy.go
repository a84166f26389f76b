package rank

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Built-in policy names.
const (
	// PolicyBase ranks by Score.
	PolicyBase = "base"
	// PolicyBonus ranks by ScoreWithBonus.
	PolicyBonus = "bonus"
	// PolicyCombined ranks by CombinedScore.
	PolicyCombined = "combined"
	// PolicyDemo ranks by Score plus 5 for 'r' minus 7 for 'j'.
	PolicyDemo = "demo"
)

// ErrUnknownPolicy is returned when a policy name is not registered.
var ErrUnknownPolicy = errors.New("unknown scoring policy")

// Policy is a named scoring function.
type Policy struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Scorer      Scorer `json:"-" yaml:"-"`
}

// Rank orders words by descending policy score.
func (p Policy) Rank(words []string) []string {
	return RankedBy(p.Scorer, words)
}

// LetterRule awards Points when a word contains Letter.
type LetterRule struct {
	Letter rune
	Points int
}

func (r LetterRule) score(word string) int {
	if strings.ContainsRune(word, r.Letter) {
		return r.Points
	}
	return 0
}

func (r LetterRule) String() string {
	return fmt.Sprintf("%d if contains '%c'", r.Points, r.Letter)
}

// NewLetterPolicy builds a policy scoring Score plus every bonus rule
// minus every penalty rule.
func NewLetterPolicy(name string, bonus, penalty []LetterRule) Policy {
	scorers := []Scorer{Score}
	desc := []string{"score"}
	for _, r := range bonus {
		scorers = append(scorers, r.score)
		desc = append(desc, "+ "+r.String())
	}
	for _, r := range penalty {
		scorers = append(scorers, Negate(r.score))
		desc = append(desc, "- "+r.String())
	}
	return Policy{
		Name:        name,
		Description: strings.Join(desc, " "),
		Scorer:      Sum(scorers...),
	}
}

// ParseLetter converts a single character string into a rune.
func ParseLetter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("letter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Policies returns the built-in policies in display order.
// The demo policy uses its own letters ('r' and 'j') and is kept apart from
// the library Bonus and Penalty ('c' and 's').
func Policies() []Policy {
	return []Policy{
		{Name: PolicyBase, Description: "characters other than 'a'", Scorer: Score},
		{Name: PolicyBonus, Description: "score + 5 if contains 'c'", Scorer: ScoreWithBonus},
		{Name: PolicyCombined, Description: "score + 5 if contains 'c' - 7 if contains 's'", Scorer: CombinedScore},
		NewLetterPolicy(PolicyDemo,
			[]LetterRule{{Letter: 'r', Points: bonusPoints}},
			[]LetterRule{{Letter: 'j', Points: penaltyPoints}}),
	}
}

// LookupPolicy finds a policy by name among the built-ins and any extras.
// Extras win over built-ins with the same name.
func LookupPolicy(name string, extra ...Policy) (Policy, error) {
	for _, p := range extra {
		if p.Name == name {
			return p, nil
		}
	}
	for _, p := range Policies() {
		if p.Name == name {
			return p, nil
		}
	}
	return Policy{}, errors.Wrapf(ErrUnknownPolicy, "%q", name)
}
