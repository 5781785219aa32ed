package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kittech/kbproximity/internal/layoutconfig"
	"github.com/kittech/kbproximity/internal/tui"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// batchCommand loads every *.yaml layout in a directory concurrently,
// exercising the module's one genuinely parallel workload.
func batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "load every layout in a directory concurrently and summarize them",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Required: true, Usage: "directory of YAML layout descriptions"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths, err := filepath.Glob(filepath.Join(cmd.String("dir"), "*.yaml"))
			if err != nil {
				return fmt.Errorf("globbing layout directory: %w", err)
			}
			if len(paths) == 0 {
				return fmt.Errorf("no *.yaml files found in %s", cmd.String("dir"))
			}

			type summary struct {
				path     string
				keyCount int
				hasSweet bool
			}
			summaries := make([]summary, len(paths))

			g, _ := errgroup.WithContext(ctx)
			for i, path := range paths {
				i, path := i, path
				g.Go(func() error {
					doc, err := layoutconfig.Load(path)
					if err != nil {
						return err
					}
					l := buildLayout(doc)
					summaries[i] = summary{path: path, keyCount: l.KeyCount(), hasSweet: l.HasTouchPositionCorrectionData()}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.SetStyle(tui.EmptyStyle())
			tw.AppendHeader(table.Row{"layout", "keys", "correction data"})
			for _, s := range summaries {
				tw.AppendRow(table.Row{filepath.Base(s.path), s.keyCount, s.hasSweet})
			}
			tw.Render()
			return nil
		},
	}
}
