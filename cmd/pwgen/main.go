// Command pwgen prints a reproducible batch of passwords configured through
// the environment (see internal/config).
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/pwgen-vault-plugin/internal/config"
	"github.com/pwgen-vault-plugin/pwgen"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pwgen:", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "pwgen",
		Level:  hclog.LevelFromString(cfg.App.LogLevel),
		Output: os.Stderr,
	})
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("could not read .env file", "error", envErr)
	}

	rules, err := cfg.Batch.ParsedRules()
	if err != nil {
		return err
	}

	logger.Debug("generating batch",
		"seed", cfg.Batch.Seed,
		"count", cfg.Batch.Count,
		"min_length", cfg.Batch.MinLength,
		"max_length", cfg.Batch.MaxLength,
		"rules", rules.Names(),
	)

	passwords := make([]string, cfg.Batch.Count)
	src := pwgen.NewJavaRandom(cfg.Batch.Seed)
	if err := pwgen.Fill(passwords, rules, cfg.Batch.MinLength, cfg.Batch.MaxLength, src, pwgen.WithLogger(logger)); err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	for _, pw := range passwords {
		fmt.Fprintln(w, pw)
	}
	return w.Flush()
}
