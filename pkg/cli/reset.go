package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mchmarny/wordrank/pkg/config"
	"github.com/urfave/cli/v2"
)

var resetCmd = &cli.Command{
	Name:            "reset",
	Usage:           "Restore the default config",
	HideHelpCommand: true,
	Action:          cmdReset,
}

func cmdReset(c *cli.Context) error {
	cfg := getSettings(c)
	path := config.Path(cfg.Dir)
	out := c.App.Writer

	fmt.Fprintf(out, "This will overwrite %s with defaults\n", path)
	fmt.Fprint(out, "Are you sure? [y/N]: ")

	reader := bufio.NewReader(c.App.Reader)
	answer, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || answer == "") {
		return fmt.Errorf("reading input: %w", err)
	}

	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting config: %w", err)
	}
	slog.Debug("config deleted", "path", path)

	if _, err := config.ReadOrCreate(cfg.Dir); err != nil {
		return fmt.Errorf("re-creating config: %w", err)
	}

	slog.Info("config reset", "path", path)
	fmt.Fprintln(out, "Reset complete.")
	return nil
}
