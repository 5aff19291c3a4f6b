// Package main demonstrates usage of the scg-fail package.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/next-trace/scg-fail/fail"
)

type customer struct {
	ID   string
	Name string
}

var (
	customers = map[string]customer{
		"42": {ID: "42", Name: "Ada"},
	}
	logger zerolog.Logger
)

func findCustomer(id string) (customer, error) {
	c, ok := customers[id]

	return fail.OrFailFunc(c, ok, func() string { return fmt.Sprintf("customer %s not found", id) })
}

func loadConfig(path string) ([]byte, error) {
	b, err := os.ReadFile(path)

	return fail.Contextf(b, err, "read config %s", path)
}

func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fail.Wrapf(err, "parse --log-level %q", level)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(lvl)

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Str("app", "scg-fail-example").
		Logger()

	return nil
}

var rootCmd = &cobra.Command{
	Use:          "scg-fail-example",
	Short:        "Demonstrates context chains built with scg-fail",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}

		return setupLogger(level)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Absent value
		if c, err := findCustomer("42"); err == nil {
			logger.Info().Str("name", c.Name).Msg("customer found")
		}

		if _, err := findCustomer("7"); err != nil {
			logger.Warn().Err(err).Msg("lookup failed")
		}

		// Foreign cause, then more context on top
		_, err := loadConfig("/does/not/exist.toml")
		err = fail.Wrap(err, "start service")

		logger.Error().Err(err).Bool("not_exist", errors.Is(err, fs.ErrNotExist)).Msg("startup failed")
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", err)

		// Direct construction
		f := fail.WithCause("checkout", fail.Newf("payment %d declined", 1001))
		fmt.Fprintln(cmd.OutOrStdout(), fail.From(f))

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
