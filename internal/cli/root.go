// Package cli implements the postman command line: solving route
// inspection on adjacency-matrix files, printing maximum matchings and
// generating random connected graphs.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries state shared by all commands of one invocation.
type app struct {
	cfg        Config
	configPath string
	log        *logrus.Logger
	out        *printer
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Output goes to the command's
// out and err writers, which tests may replace.
func NewRootCommand(version string) *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: logrus.New()}

	root := &cobra.Command{
		Use:          "postman",
		Short:        "Find closed walks covering every edge of a graph (Chinese postman).",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format (text or json)")
	pf.BoolVar(&a.cfg.NoColor, "no-color", a.cfg.NoColor, "disable colored output")

	root.AddCommand(newSolveCommand(a), newMatchCommand(a), newGenerateCommand(a))

	return root
}

// setup merges the config file under the command-line flags, then
// configures logging and output.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		if err := a.loadConfig(cmd.Flags()); err != nil {
			return err
		}
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	if a.cfg.LogFormat == "json" {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		a.log.SetFormatter(&logrus.TextFormatter{
			DisableQuote:     true,
			DisableTimestamp: true,
			PadLevelText:     true,
		})
	}
	a.out = newPrinter(cmd.OutOrStdout(), a.cfg.NoColor)
	if a.configPath != "" {
		a.log.WithField("path", a.configPath).Debug("config loaded")
	}

	return nil
}

// loadConfig decodes the file into a.cfg and re-applies every flag the
// user set explicitly, so flags win over the file.
func (a *app) loadConfig(fs *pflag.FlagSet) error {
	changed := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	if err := LoadConfig(a.configPath, &a.cfg); err != nil {
		return err
	}
	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "flag --%s", name)
		}
	}

	return nil
}

// openInput returns a reader for path, with "-" meaning stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	return f, nil
}
