package main

import (
	"context"
	"os"

	"github.com/kittech/kbproximity/internal/gesture"
	"github.com/kittech/kbproximity/internal/layoutconfig"
	"github.com/kittech/kbproximity/internal/tui"
	"github.com/urfave/cli/v3"
)

func gestureCommand() *cli.Command {
	return &cli.Command{
		Name:  "gesture",
		Usage: "sub-sample a raw touch trace against a layout and print the result",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "layout", Aliases: []string{"l"}, Required: true, Usage: "YAML layout description"},
			&cli.StringFlag{Name: "trace", Aliases: []string{"t"}, Required: true, Usage: "touch trace file (\"x,y[,t]\" per line)"},
			&cli.Float64Flag{Name: "max-point-to-key-length", Value: 10, Usage: "upper bound on normalized distance to the nearest key"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := layoutconfig.Load(cmd.String("layout"))
			if err != nil {
				return err
			}
			l := buildLayout(doc)

			trace, err := readTrace(cmd.String("trace"))
			if err != nil {
				return err
			}

			var s gesture.State
			pointerIDs := make([]int, len(trace.xs))
			s.InitInputParams(gesture.InputParams{
				Layout:              l,
				IsGeometric:         true,
				MaxPointToKeyLength: float32(cmd.Float64("max-point-to-key-length")),
				Xs:                  trace.xs, Ys: trace.ys,
				Times:      optionalTimes(trace),
				PointerIDs: pointerIDs,
			})

			tui.RenderSampledPoints(os.Stdout, &s)
			return nil
		},
	}
}

func optionalTimes(t *touchTrace) []int32 {
	if !t.hasTimes {
		return nil
	}
	return t.times
}
