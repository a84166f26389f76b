package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mchmarny/wordrank/pkg/rank"
	"github.com/urfave/cli/v2"
)

var demoCmd = &cli.Command{
	Name:            "demo",
	Usage:           "Rank the sample words by the base and demo policies",
	HideHelpCommand: true,
	Action: func(c *cli.Context) error {
		return RunDemo(c.App.Writer)
	},
}

// RunDemo ranks the sample words by the base policy, then by the demo
// policy, and writes one line per result to w.
func RunDemo(w io.Writer) error {
	words := []string{"ada", "haskell", "scala", "java", "rust"}

	for _, name := range []string{rank.PolicyBase, rank.PolicyDemo} {
		p, err := rank.LookupPolicy(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Result: %s\n", formatList(p.Rank(words))); err != nil {
			return fmt.Errorf("writing %s result: %w", name, err)
		}
	}
	return nil
}

func formatList(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, strconv.Quote(w))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
