package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/denismitr/collections/internal/script"
	"github.com/denismitr/collections/set"
)

var ErrUnknownBacking = errors.New("unknown set backing")

// DemoScript is replayed when no tokens are given
var DemoScript = []string{"+1", "+2", "+3", "+2", "-3", "#"}

type options struct {
	backing  string
	logLevel string
	pretty   bool
	asJSON   bool
}

// NewRootCmd builds the setplay command, output goes to the command's out and err writers
func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "setplay [flags] TOKEN...",
		Short: "Replay insert/remove/member scripts against a set.",
		Long: `setplay applies a script of tokens to an empty set of strings and prints
the answers to its queries.

  +x  insert x
  -x  remove x
  ?x  print whether x is a member
  #   print the size

Flags must come before the tokens. Put "--" before a script that starts
with a removal, e.g. setplay -- -1 +2.

Without tokens the demo script "+1 +2 +3 +2 -3 #" is replayed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&opts.backing, "backing", "list", "set implementation: list or hash")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", zerolog.InfoLevel.String(), "log level")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "human readable logs")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the final set as a JSON array")

	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), opts)
	if err != nil {
		return err
	}

	s, err := newSet(opts.backing)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = DemoScript
	}

	ops, err := script.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parse script")
	}

	logger.Debug().Str("backing", opts.backing).Int("ops", len(ops)).Msg("replay script")
	report := script.Run(s, ops, logger)
	logger.Info().Int("len", report.Len).Msg("script done")

	out := cmd.OutOrStdout()
	if opts.asJSON {
		b, err := json.Marshal(s)
		if err != nil {
			return errors.Wrap(err, "encode set")
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	for _, a := range report.Answers {
		if a.Op.Kind == script.SizeOp {
			fmt.Fprintf(out, "size: %d\n", a.Size)
		} else {
			fmt.Fprintf(out, "member %s: %t\n", a.Op.Item, a.Member)
		}
	}

	return nil
}

func newSet(backing string) (set.Set[string], error) {
	switch backing {
	case "list":
		return set.New[string](), nil
	case "hash":
		return set.NewHashSet[string](), nil
	}

	return nil, errors.Wrapf(ErrUnknownBacking, "%q", backing)
}

func newLogger(w io.Writer, opts options) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "parse log level")
	}

	if opts.pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339Nano}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
