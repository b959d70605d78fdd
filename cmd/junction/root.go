package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/junction/internal/config"
	"github.com/katalvlaran/junction/internal/logger"
	"github.com/katalvlaran/junction/point"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        config.Config
	log        *zap.Logger
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v, log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "junction",
		Short: "Cluster 3-D points by joining the closest pairs",
		Long: `junction reads points as "x,y,z" lines and joins the closest pairs with a
union-find forest.

  bounded  - join the K closest pairs, print the product of the largest cluster sizes
  connect  - join pairs until one cluster remains, print a metric of the final pair

Settings come from flags, JUNCTION_* environment variables, a TOML file
(--config) and built-in defaults, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML configuration file")
	pf.Bool("log-json", false, "emit JSON logs")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Int("workers", 1, "goroutines computing pair distances")
	_ = v.BindPFlag(config.KeyLogJSON, pf.Lookup("log-json"))
	_ = v.BindPFlag(config.KeyWorkers, pf.Lookup("workers"))
	_ = v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))

	root.AddCommand(newBoundedCmd(a), newConnectCmd(a))

	return root
}

// setup resolves configuration and builds the logger once flags are parsed.
func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	l, err := logger.New(logger.Options{JSON: cfg.Log.JSON, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, l

	return nil
}

// readPoints parses the file named by args[0], or stdin when it is absent or "-".
func readPoints(cmd *cobra.Command, args []string) ([]point.Point, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	return point.Parse(r)
}
