package cli

import (
	"fmt"
	"log/slog"

	"github.com/mchmarny/wordrank/pkg/rank"
	"github.com/urfave/cli/v2"
)

var (
	policyFlag = &cli.StringFlag{
		Name:    "policy",
		Aliases: []string{"p"},
		Usage:   "Scoring policy name (optional, defaults to config policy)",
	}

	aboveFlag = &cli.IntFlag{
		Name:  "above",
		Usage: "Keep words scoring strictly higher than this value (optional, defaults to config threshold)",
	}

	rankCmd = &cli.Command{
		Name:      "rank",
		Usage:     "Order words by descending score",
		ArgsUsage: "[WORD...]",
		UsageText: `wordrank rank ada haskell scala            # rank with the default policy
   wordrank rank --policy combined java rust   # rank with a named policy`,
		HideHelpCommand: true,
		Action:          cmdRank,
		Flags:           []cli.Flag{policyFlag},
	}

	scoresCmd = &cli.Command{
		Name:            "scores",
		Usage:           "Show the score of each word in input order",
		ArgsUsage:       "[WORD...]",
		HideHelpCommand: true,
		Action:          cmdScores,
		Flags:           []cli.Flag{policyFlag},
	}

	filterCmd = &cli.Command{
		Name:            "filter",
		Usage:           "Keep words scoring above a threshold, in input order",
		ArgsUsage:       "[WORD...]",
		HideHelpCommand: true,
		Action:          cmdFilter,
		Flags:           []cli.Flag{policyFlag, aboveFlag},
	}

	policiesCmd = &cli.Command{
		Name:            "policies",
		Usage:           "List the available scoring policies",
		HideHelpCommand: true,
		Action:          cmdPolicies,
	}
)

type RankResult struct {
	Policy string   `json:"policy" yaml:"policy"`
	Words  []string `json:"words" yaml:"words"`
}

type WordScore struct {
	Word  string `json:"word" yaml:"word"`
	Score int    `json:"score" yaml:"score"`
}

type FilterResult struct {
	Policy    string   `json:"policy" yaml:"policy"`
	Threshold int      `json:"threshold" yaml:"threshold"`
	Words     []string `json:"words" yaml:"words"`
}

func cmdRank(c *cli.Context) error {
	cfg, err := getConfig(c)
	if err != nil {
		return err
	}
	p, err := cfg.policy(c.String(policyFlag.Name))
	if err != nil {
		return fmt.Errorf("resolving policy: %w", err)
	}

	words := cfg.words(c)
	slog.Debug("ranking words", "policy", p.Name, "count", len(words))

	res := &RankResult{
		Policy: p.Name,
		Words:  p.Rank(words),
	}
	if err := encode(c.App.Writer, cfg.Format, res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func cmdScores(c *cli.Context) error {
	cfg, err := getConfig(c)
	if err != nil {
		return err
	}
	p, err := cfg.policy(c.String(policyFlag.Name))
	if err != nil {
		return fmt.Errorf("resolving policy: %w", err)
	}

	words := cfg.words(c)
	scores := rank.WordScores(words, p.Scorer)

	list := make([]*WordScore, 0, len(words))
	for i, w := range words {
		list = append(list, &WordScore{Word: w, Score: scores[i]})
	}
	if err := encode(c.App.Writer, cfg.Format, list); err != nil {
		return fmt.Errorf("error encoding scores: %w", err)
	}
	return nil
}

func cmdFilter(c *cli.Context) error {
	cfg, err := getConfig(c)
	if err != nil {
		return err
	}
	p, err := cfg.policy(c.String(policyFlag.Name))
	if err != nil {
		return fmt.Errorf("resolving policy: %w", err)
	}

	threshold := cfg.Config.Threshold
	if c.IsSet(aboveFlag.Name) {
		threshold = c.Int(aboveFlag.Name)
	}

	above := rank.HighScoringFunc(cfg.words(c), p.Scorer)
	res := &FilterResult{
		Policy:    p.Name,
		Threshold: threshold,
		Words:     above(threshold),
	}
	if err := encode(c.App.Writer, cfg.Format, res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func cmdPolicies(c *cli.Context) error {
	cfg, err := getConfig(c)
	if err != nil {
		return err
	}
	list := append(rank.Policies(), cfg.Policies...)
	if err := encode(c.App.Writer, cfg.Format, list); err != nil {
		return fmt.Errorf("error encoding policies: %w", err)
	}
	return nil
}
