package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MAZEBENCH_"

// Load builds the effective configuration: Default, then the YAML file at
// path (skipped when path is empty), then MAZEBENCH_* environment
// variables. Variables from envFiles are loaded first without overriding
// the real environment; a missing env file is ignored. The result is
// validated.
func Load(path string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// WriteYAML writes c as a config file.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// applyEnv overrides fields from MAZEBENCH_* variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	var err error
	num := func(key string, set func(string) error) {
		v, ok := lookup(EnvPrefix + key)
		if !ok || err != nil {
			return
		}
		if e := set(strings.TrimSpace(v)); e != nil {
			err = fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, key, v, e)
		}
	}
	float := func(dst *float64) func(string) error {
		return func(s string) error {
			v, e := strconv.ParseFloat(s, 64)
			*dst = v
			return e
		}
	}
	integer := func(dst *int) func(string) error {
		return func(s string) error {
			v, e := strconv.Atoi(s)
			*dst = v
			return e
		}
	}
	int64s := func(dst *int64) func(string) error {
		return func(s string) error {
			v, e := strconv.ParseInt(s, 10, 64)
			*dst = v
			return e
		}
	}
	boolean := func(dst *bool) func(string) error {
		return func(s string) error {
			v, e := strconv.ParseBool(s)
			*dst = v
			return e
		}
	}

	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)
	str("GENERATOR", &c.Maze.Generator)
	num("ROWS", integer(&c.Maze.Rows))
	num("COLS", integer(&c.Maze.Cols))
	num("SEED", int64s(&c.Maze.Seed))
	num("DISCOUNT", float(&c.MDP.Discount))
	num("LIVING_REWARD", float(&c.MDP.LivingReward))
	num("NOISE", float(&c.MDP.Noise))
	num("THETA", float(&c.MDP.Theta))
	num("MAX_ITERATIONS", integer(&c.MDP.MaxIterations))
	num("INITIAL_VALUE", float(&c.MDP.InitialValue))
	num("GOAL_REWARD", float(&c.MDP.GoalReward))
	num("EVAL_SIZES", func(s string) error {
		v, e := splitList(s, strconv.Atoi)
		c.Eval.Sizes = v
		return e
	})
	num("EVAL_SEEDS", func(s string) error {
		v, e := splitList(s, func(x string) (int64, error) { return strconv.ParseInt(x, 10, 64) })
		c.Eval.Seeds = v
		return e
	})
	num("EVAL_PATHFINDING", boolean(&c.Eval.Pathfinding))
	num("EVAL_MDP", boolean(&c.Eval.MDP))
	str("OUT_DIR", &c.Eval.OutDir)
	return err
}

// splitList parses a comma-separated list. Empty items are skipped.
func splitList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	var out []T
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := parse(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
