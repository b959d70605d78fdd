package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/junction/cluster"
	"github.com/katalvlaran/junction/internal/config"
)

func newBoundedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounded [file|-]",
		Short: "Join the K closest pairs and multiply the largest cluster sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := readPoints(cmd, args)
			if err != nil {
				return err
			}
			a.log.Info("bounded clustering",
				zap.Int("points", len(pts)),
				zap.Int("budget", a.cfg.Budget),
				zap.Int("top_k", a.cfg.TopK))

			product, err := cluster.ClusterBounded(pts, a.cfg.Budget,
				cluster.WithTopK(a.cfg.TopK),
				cluster.WithWorkers(a.cfg.Workers),
				cluster.WithLogger(a.log))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), product)

			return err
		},
	}

	f := cmd.Flags()
	f.Int("budget", 1000, "number of closest pairs to join")
	f.Int("top", 3, "number of largest clusters to multiply")
	_ = a.v.BindPFlag(config.KeyBudget, f.Lookup("budget"))
	_ = a.v.BindPFlag(config.KeyTopK, f.Lookup("top"))

	return cmd
}

func newConnectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect [file|-]",
		Short: "Join pairs until one cluster remains and report a metric of the last pair",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := cluster.MetricByName(a.cfg.Metric)
			if err != nil {
				return err
			}
			pts, err := readPoints(cmd, args)
			if err != nil {
				return err
			}
			a.log.Info("completion clustering",
				zap.Int("points", len(pts)),
				zap.String("metric", a.cfg.Metric))

			last, err := cluster.ClusterUntilConnected(pts, metric,
				cluster.WithWorkers(a.cfg.Workers),
				cluster.WithLogger(a.log))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), last)

			return err
		},
	}

	f := cmd.Flags()
	f.String("metric", "x-product", "value reported for the final pair: x-product, distance")
	_ = a.v.BindPFlag(config.KeyMetric, f.Lookup("metric"))

	return cmd
}
