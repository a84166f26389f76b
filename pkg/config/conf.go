package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mchmarny/wordrank/pkg/rank"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600
)

// ErrDuplicatePolicy is returned when a custom policy name is already taken.
var ErrDuplicatePolicy = errors.New("duplicate policy name")

// Config represents app config object.
type Config struct {
	Words     []string       `yaml:"words"`
	Policy    string         `yaml:"policy"`
	Threshold int            `yaml:"threshold"`
	Policies  []PolicyConfig `yaml:"policies,omitempty"`
}

// PolicyConfig declares a letter based scoring policy.
type PolicyConfig struct {
	Name    string       `yaml:"name"`
	Bonus   []LetterRule `yaml:"bonus,omitempty"`
	Penalty []LetterRule `yaml:"penalty,omitempty"`
}

type LetterRule struct {
	Letter string `yaml:"letter"`
	Points int    `yaml:"points"`
}

func getDefaultConfig() *Config {
	return &Config{
		Words:     []string{"ada", "haskell", "scala", "java", "rust"},
		Policy:    rank.PolicyBase,
		Threshold: rank.DefaultThreshold,
	}
}

// Validate checks that the default policy resolves, custom policy names are
// unique and every letter rule holds exactly one character.
func (c *Config) Validate() error {
	policies, err := c.RankPolicies()
	if err != nil {
		return err
	}
	if c.Policy == "" {
		return nil
	}
	if _, err := rank.LookupPolicy(c.Policy, policies...); err != nil {
		return errors.Wrap(err, "invalid default policy")
	}
	return nil
}

// RankPolicies converts the custom policy entries into rank policies.
// Names must be unique and must not reuse a built-in policy name.
func (c *Config) RankPolicies() ([]rank.Policy, error) {
	seen := make(map[string]bool, len(c.Policies))
	for _, p := range rank.Policies() {
		seen[p.Name] = true
	}

	list := make([]rank.Policy, 0, len(c.Policies))
	for _, p := range c.Policies {
		if strings.TrimSpace(p.Name) == "" {
			return nil, errors.New("policy name required")
		}
		if seen[p.Name] {
			return nil, errors.Wrapf(ErrDuplicatePolicy, "%q", p.Name)
		}
		seen[p.Name] = true
		bonus, err := toRules(p.Bonus)
		if err != nil {
			return nil, errors.Wrapf(err, "policy %s bonus", p.Name)
		}
		penalty, err := toRules(p.Penalty)
		if err != nil {
			return nil, errors.Wrapf(err, "policy %s penalty", p.Name)
		}
		list = append(list, rank.NewLetterPolicy(p.Name, bonus, penalty))
	}
	return list, nil
}

func toRules(in []LetterRule) ([]rank.LetterRule, error) {
	rules := make([]rank.LetterRule, 0, len(in))
	for _, r := range in {
		l, err := rank.ParseLetter(r.Letter)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rank.LetterRule{Letter: l, Points: r.Points})
	}
	return rules, nil
}

// Path returns the config file location inside dirPath.
func Path(dirPath string) string {
	return filepath.Join(dirPath, configFileName)
}

func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	path := Path(dirPath)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", configFileName)
	}
	return nil
}

// ReadOrCreate reads app config from directory or creates a new one.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if err := os.MkdirAll(dirPath, dirMode); err != nil {
		return nil, errors.Wrapf(err, "failed to create dir: %s", dirPath)
	}

	path := Path(dirPath)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating default config", "path", path)
		if err := Save(dirPath, getDefaultConfig()); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	// keys missing from the file keep their default values
	c := getDefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", path)
	}
	return c, nil
}

// GetOrCreateHomeDir returns the app directory under the user home.
// The create flag is set to true if the directory was created.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get user home dir")
	}
	slog.Debug("home dir", "path", home)

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", false, errors.Wrapf(err, "failed to create dir: %s", dir)
		}
		created = true
	}
	return dir, created, nil
}
