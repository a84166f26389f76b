package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mchmarny/wordrank/pkg/config"
	"github.com/mchmarny/wordrank/pkg/logging"
	"github.com/mchmarny/wordrank/pkg/rank"
	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "wordrank"
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	configDirFlag = &urfave.StringFlag{
		Name:  "config",
		Usage: fmt.Sprintf("Path to the config directory (optional, defaults to $HOME/.%s)", appName),
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp(os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Dir      string
	Format   string
	Config   *config.Config
	Policies []rank.Policy
}

func getSettings(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

// getConfig returns the app settings with the config file loaded and validated.
// Loading happens on first use so commands like reset work on a broken file.
func getConfig(c *urfave.Context) (*appConfig, error) {
	a := getSettings(c)
	if a.Config != nil {
		return a, nil
	}

	cfg, err := config.ReadOrCreate(a.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	policies, err := cfg.RankPolicies()
	if err != nil {
		return nil, fmt.Errorf("loading policies: %w", err)
	}
	slog.Debug("config loaded", "dir", a.Dir, "words", len(cfg.Words), "policies", len(policies))

	a.Config = cfg
	a.Policies = policies
	return a, nil
}

func parseFormat(f string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(f)) {
	case "", formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q (want %s or %s)", f, formatJSON, formatYAML)
	}
}

func newApp(in io.Reader, out io.Writer) *urfave.App {
	return &urfave.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Rank words by pluggable scoring policies",
		Reader:               in,
		Writer:               out,
		Metadata:             map[string]any{},
		Flags: []urfave.Flag{
			debugFlag,
			configDirFlag,
			formatFlag,
		},
		Commands: []*urfave.Command{
			demoCmd,
			rankCmd,
			scoresCmd,
			filterCmd,
			policiesCmd,
			editCmd,
			resetCmd,
		},
		Before: func(c *urfave.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.SetDefaultCLILogger("debug")
			}

			format, err := parseFormat(c.String(formatFlag.Name))
			if err != nil {
				return err
			}

			dir := c.String(configDirFlag.Name)
			if dir == "" {
				home, _, err := config.GetOrCreateHomeDir(appName)
				if err != nil {
					return fmt.Errorf("resolving config dir: %w", err)
				}
				dir = home
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Dir:    dir,
				Format: format,
			}
			return nil
		},
	}
}

// words returns the command arguments, or the configured list when none are given.
func (a *appConfig) words(c *urfave.Context) []string {
	if c.Args().Len() > 0 {
		return c.Args().Slice()
	}
	return a.Config.Words
}

// policy resolves the named policy, falling back to the configured default.
func (a *appConfig) policy(name string) (rank.Policy, error) {
	if name == "" {
		name = a.Config.Policy
	}
	if name == "" {
		name = rank.PolicyBase
	}
	return rank.LookupPolicy(name, a.Policies...)
}

func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		return yaml.NewEncoder(w).Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
