package main

import (
	"context"
	"os"

	"github.com/kittech/kbproximity/internal/emoji"
	"github.com/kittech/kbproximity/internal/tui"
	"github.com/urfave/cli/v3"
)

func emojiCommand() *cli.Command {
	return &cli.Command{
		Name:  "emoji",
		Usage: "search the bundled emoji keyword dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Required: true},
			&cli.BoolFlag{Name: "exact", Usage: "restrict to exact/segment keyword matches"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			query := cmd.String("query")
			results := emoji.Search(query, cmd.Bool("exact"))
			tui.RenderEmojiResults(os.Stdout, query, results)
			return nil
		},
	}
}
