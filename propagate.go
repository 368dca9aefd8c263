package main

import (
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"git.c3pb.de/farhaven/solarsystem/orrery"
)

type propagateFlags struct {
	ticks int
	every int
	scale float64
}

func newPropagateCommand(g *globalFlags) *cobra.Command {
	pf := &propagateFlags{}

	cmd := &cobra.Command{
		Use:   "propagate",
		Short: "Propagate the orbits without a window and print body states",
		Long: "Advance the simulation clock for a number of ticks and print the state of every body as\n" +
			"logfmt lines on stdout, once before the first tick and then every --every ticks.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropagate(cmd, g, pf)
		},
	}

	f := cmd.Flags()
	f.IntVar(&pf.ticks, "ticks", 1000, "number of ticks to run")
	f.IntVar(&pf.every, "every", 100, "print the state every n ticks")
	f.Float64Var(&pf.scale, "scale", 1, "time scale, overrides --time-scale when set")

	return cmd
}

func runPropagate(cmd *cobra.Command, g *globalFlags, pf *propagateFlags) error {
	if pf.ticks < 0 {
		return fmt.Errorf(`--ticks must not be negative, got %d`, pf.ticks)
	}
	if pf.every <= 0 {
		return fmt.Errorf(`--every must be positive, got %d`, pf.every)
	}

	_, o, _, err := setup(cmd, g, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("scale") {
		o.Clock().SetTimeScale(pf.scale)
	}

	out := log.NewLogfmtLogger(cmd.OutOrStdout())
	printStates(out, o.Snapshot())

	for i := 1; i <= pf.ticks; i++ {
		// halted bodies are already logged, the others keep going
		_ = o.Step()
		if i%pf.every == 0 || i == pf.ticks {
			printStates(out, o.Snapshot())
		}
	}

	return nil
}

func printStates(out log.Logger, s orrery.Snapshot) {
	for _, b := range s.Bodies {
		kv := []interface{}{
			"t", fmt.Sprintf("%.3f", s.SimTime),
			"body", b.ID,
			"x", fmt.Sprintf("%.6f", b.Pos.X),
			"y", fmt.Sprintf("%.6f", b.Pos.Y),
			"vx", fmt.Sprintf("%.6f", b.Vel.X),
			"vy", fmt.Sprintf("%.6f", b.Vel.Y),
			"rot", fmt.Sprintf("%.2f", b.Rotation),
		}
		if b.Halted {
			kv = append(kv, "halted", true, "err", b.Err)
		}
		out.Log(kv...)
	}
}
