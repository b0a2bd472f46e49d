// cmd/statcli/root.go
package statcli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/statcli/config"
	"github.com/mwiater/statcli/dataset"
	"github.com/mwiater/statcli/report"
	"github.com/mwiater/statcli/stats"
)

const (
	flagConfig    = "config"
	flagInput     = "input"
	flagOperation = "operation"
	flagLang      = "lang"
	flagPrecision = "precision"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagDebug     = "debug"
)

// reportedError wraps an error whose message has already been written to the
// user. Execute exits non-zero without printing it a second time.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// rootOptions carries state shared by the root command and its subcommands.
type rootOptions struct {
	v       *viper.Viper
	cfgFile string
}

// session is the resolved configuration, language and logger for a single
// command invocation.
type session struct {
	cfg    config.Config
	lang   report.Language
	logger zerolog.Logger
}

// load resolves configuration for cmd and builds its logger.
func (o *rootOptions) load(cmd *cobra.Command) (session, error) {
	cfg, err := config.Load(o.v, o.cfgFile)
	if err != nil {
		return session{}, err
	}
	lang, err := report.ParseLanguage(cfg.Lang)
	if err != nil {
		return session{}, err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return session{}, err
	}
	if cfg.Debug {
		pp.Fprintln(cmd.ErrOrStderr(), cfg)
	}
	return session{cfg: cfg, lang: lang, logger: logger}, nil
}

// NewRootCmd builds the statcli command tree. The root command computes one
// statistic over the numbers in --input.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "statcli",
		Short: "Compute mean, variance or standard deviation of numbers in a file",
		Long: `statcli reads up to 100 whitespace-separated numbers from --input and prints
the statistic selected with --operation: mean, variance (population) or
standard_deviation (population).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runStatistic(cmd.OutOrStdout(), cmd.ErrOrStderr(), s)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.cfgFile, flagConfig, "c", "", "optional config file (yaml, json or toml)")
	pf.StringP(flagInput, "i", "", "file with whitespace-separated numbers")
	pf.String(flagLang, "en", "output language (en, ru)")
	pf.Int(flagPrecision, report.DefaultPrecision, "significant digits in printed results")
	pf.String(flagLogLevel, zerolog.InfoLevel.String(), "logging level")
	pf.String(flagLogFormat, logFormatText, "logging format; must be either json or text")
	pf.Bool(flagDebug, false, "dump resolved configuration and input to stderr")
	rootCmd.Flags().StringP(flagOperation, "o", "", "operation: mean, variance or standard_deviation")

	bindings := map[string]string{
		config.KeyInput:     flagInput,
		config.KeyLang:      flagLang,
		config.KeyPrecision: flagPrecision,
		config.KeyLogLevel:  flagLogLevel,
		config.KeyLogFormat: flagLogFormat,
		config.KeyDebug:     flagDebug,
	}
	for key, name := range bindings {
		_ = opts.v.BindPFlag(key, pf.Lookup(name))
	}
	_ = opts.v.BindPFlag(config.KeyOperation, rootCmd.Flags().Lookup(flagOperation))

	rootCmd.AddCommand(newListCmd(opts), newBrowseCmd(opts))

	return rootCmd
}

// runStatistic is the non-interactive path: validate arguments, load the
// input, compute and print.
func runStatistic(out, errOut io.Writer, s session) error {
	if s.cfg.Input == "" || s.cfg.Operation == "" {
		fmt.Fprintln(errOut, report.NotEnoughArguments(s.lang))
		report.Usage(out, s.lang)
		return nil
	}

	op, err := stats.ParseOperation(s.cfg.Operation)
	if err != nil {
		report.UnknownOperationLine(errOut, s.lang, s.cfg.Operation)
		report.Usage(out, s.lang)
		return reportedError{err}
	}

	sample, rep, err := dataset.Load(s.cfg.Input)
	if err != nil {
		report.ErrorLine(errOut, s.lang, err)
		return reportedError{err}
	}
	logIngest(s.logger, s.cfg.Input, rep)
	if s.cfg.Debug {
		pp.Fprintln(errOut, sample)
	}

	v, err := stats.Compute(op, sample)
	if err != nil {
		report.ErrorLine(errOut, s.lang, err)
		return reportedError{err}
	}
	return report.Result(out, s.lang, op, v, s.cfg.Precision)
}

// Execute runs the statcli command tree. Errors that were not already shown
// to the user are printed to stderr; any error exits the process with status 1.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
