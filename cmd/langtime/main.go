package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/td0m/langtime/internal/config"
	"github.com/td0m/langtime/internal/ui"
	"github.com/td0m/langtime/pkg/langtime"
)

const cannotParse = "Cannot parse input as a date"

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		if !errors.Is(err, langtime.ErrNotParsable) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

type options struct {
	configFile string
	clock      func() time.Time
}

// setup loads the merged configuration and builds a parser logging to the
// command's stderr.
func (o *options) setup(cmd *cobra.Command) (*config.Config, *langtime.Parser, error) {
	cfg, err := config.Load(o.configFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(logrus.WarnLevel)
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithFields(logrus.Fields{
		"dialect":    cfg.Parse.Dialect,
		"full_match": cfg.Parse.FullMatch,
	}).Debug("configuration loaded")

	return cfg, langtime.New(langtime.WithClock(o.clock), langtime.WithLogger(log)), nil
}

func newRootCmd(clock func() time.Time) *cobra.Command {
	o := &options{clock: clock}
	cmd := &cobra.Command{
		Use:   "langtime <expression>...",
		Short: "Parse an English date or time expression",
		Long: `Parse an English date or time expression into an instant in the local
timezone. All arguments are joined with spaces, so quoting is optional:

  langtime tomorrow at half past 3
  langtime --dialect us 12/06/2024
  langtime --full 3 days ago`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, err := o.setup(cmd)
			if err != nil {
				return err
			}
			t, err := p.Parse(strings.Join(args, " "), cfg.Parse)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Failure.Render(cannotParse))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderInstant(t, p.Now(), cfg.Layout))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "config file (default $HOME/.config/langtime/langtime.yaml)")
	flags.String("dialect", langtime.UK.String(), `date order for numeric and spelled dates, "uk" or "us"`)
	flags.Bool("full", false, "reject input with trailing text that is not part of the date")
	flags.String("layout", "", "Go time layout used to print the result")
	flags.Bool("debug", false, "log which grammar matched")

	cmd.AddCommand(newInteractiveCmd(o))
	return cmd
}
