// Command kbproximity is a stand-in host for the proximity/gesture CORE: it
// loads a keyboard layout description, feeds it a touch trace, and prints
// the diagnostics a real input-method host would otherwise consume
// silently, plus an emoji keyword search utility.
package main

import (
	"context"
	"os"

	"github.com/kittech/kbproximity/internal/kbutil"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "kbproximity",
		Usage: "inspect keyboard proximity geometry, sample gesture traces, and search emoji keywords",
		Commands: []*cli.Command{
			layoutCommand(),
			gestureCommand(),
			emojiCommand(),
			batchCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		kbutil.MustFprintln(os.Stderr, "kbproximity:", err)
		os.Exit(1)
	}
}
