package main

import (
	"context"
	"os"

	"github.com/kittech/kbproximity/internal/kbutil"
	"github.com/kittech/kbproximity/internal/layoutconfig"
	"github.com/kittech/kbproximity/internal/tui"
	"github.com/urfave/cli/v3"
)

func layoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "layout",
		Usage: "load a layout description and print its key geometry",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "YAML layout description"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := layoutconfig.Load(cmd.String("file"))
			if err != nil {
				return err
			}
			l := buildLayout(doc)
			kbutil.MustFprintf(os.Stdout, "keyboard %dx%d, %d keys, grid %dx%d, correction data: %v\n\n",
				l.KeyboardWidth(), l.KeyboardHeight(), l.KeyCount(), l.GridWidth(), l.GridHeight(),
				l.HasTouchPositionCorrectionData())
			tui.RenderLayoutSummary(os.Stdout, l)
			return nil
		},
	}
}
