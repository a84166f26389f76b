package cli

import (
	"fmt"

	"github.com/mchmarny/wordrank/pkg/sequence"
	"github.com/urfave/cli/v2"
)

var (
	elementFlag = &cli.StringFlag{
		Name:     "element",
		Aliases:  []string{"e"},
		Usage:    "Word to insert",
		Required: true,
	}

	editCmd = &cli.Command{
		Name:  "edit",
		Usage: "Derive a new word sequence",
		UsageText: `wordrank edit first-two a b c            # [a b]
   wordrank edit insert --element c a b      # [a c b]`,
		HideHelpCommand: true,
		Subcommands: []*cli.Command{
			{
				Name:      "first-two",
				Usage:     "First two words",
				ArgsUsage: "[WORD...]",
				Action:    editAction(sequence.FirstTwo),
			},
			{
				Name:      "last-two",
				Usage:     "Last two words",
				ArgsUsage: "[WORD...]",
				Action:    editAction(sequence.LastTwo),
			},
			{
				Name:      "rotate",
				Usage:     "Move the first two words to the end",
				ArgsUsage: "[WORD...]",
				Action:    editAction(sequence.RotateFirstTwoToEnd),
			},
			{
				Name:      "insert",
				Usage:     "Insert a word before the last one",
				ArgsUsage: "[WORD...]",
				Flags:     []cli.Flag{elementFlag},
				Action: func(c *cli.Context) error {
					e := c.String(elementFlag.Name)
					return editAction(func(s []string) ([]string, error) {
						return sequence.InsertBeforeLast(s, e)
					})(c)
				},
			},
		},
	}
)

func editAction(op func([]string) ([]string, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := getConfig(c)
	if err != nil {
		return err
	}
		res, err := op(cfg.words(c))
		if err != nil {
			return fmt.Errorf("editing sequence: %w", err)
		}
		if err := encode(c.App.Writer, cfg.Format, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	}
}
