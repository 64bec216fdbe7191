package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/confguard/confguard/internal/loader"
	"github.com/confguard/confguard/internal/logging"
	"github.com/confguard/confguard/internal/policy"
	"github.com/confguard/confguard/internal/validate"
)

const (
	msgValid   = "Data is valid according to the policy."
	msgInvalid = "Data does not conform to the defined policy."
)

type cliError struct {
	code int
	err  error
}

func (e cliError) Error() string { return e.err.Error() }

func main() {
	root := newRootCommand(os.Stderr)
	if err := root.Execute(); err != nil {
		var ce cliError
		if errors.As(err, &ce) {
			fmt.Fprintln(os.Stderr, ce.err)
			os.Exit(ce.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. Diagnostics go to logW; the validation
// sentence goes to the command's stdout.
func newRootCommand(logW io.Writer) *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:           "confguard <policy_file> <data_file>",
		Short:         "Validates system configurations against a defined policy",
		Long:          "Loads a YAML/JSON policy file embedding a JSON Schema under a 'schema' key,\nloads a YAML/JSON data file, and reports whether the data conforms.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return cliError{code: 1, err: err}
			}
			logger := logging.New(logW, level).With("run_id", uuid.NewString())
			return run(cmd, logger, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&logLevel, "log_level", "INFO",
		fmt.Sprintf("log level (%s)", strings.Join(logging.Levels, ", ")))
	return cmd
}

func run(cmd *cobra.Command, logger *log.Logger, policyPath, dataPath string) error {
	policyDoc, err := loader.Load(logger, policyPath)
	if err != nil {
		logger.Error("an unexpected error occurred", "err", err)
		return cliError{code: 1, err: err}
	}
	dataDoc, err := loader.Load(logger, dataPath)
	if err != nil {
		logger.Error("an unexpected error occurred", "err", err)
		return cliError{code: 1, err: err}
	}

	schemaDoc, err := policy.ExtractSchema(policyDoc)
	if err != nil {
		logger.Error(err.Error())
		return cliError{code: 1, err: err}
	}

	v := &validate.Validator{Logger: logger}
	res := v.Check(dataDoc, schemaDoc)
	if res.Valid {
		logger.Info(msgValid)
		fmt.Fprintln(cmd.OutOrStdout(), msgValid)
	} else {
		logger.Warn(msgInvalid)
		fmt.Fprintln(cmd.OutOrStdout(), msgInvalid)
	}
	return nil
}
