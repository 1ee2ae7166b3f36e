package main

import (
	"os"

	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/iomonad"
	"github.com/lightningnetwork/fp/seq"
	"github.com/lightningnetwork/fp/statcollect"
	"github.com/urfave/cli"
)

var statsCommand = cli.Command{
	Name:      "stats",
	Category:  "Examples",
	Usage:     "Group host metrics by host and application.",
	ArgsUsage: "[file]",
	Description: `
	Read a JSON array of stats, each naming a host, an application, a
	metric key and its value, and print them grouped per host with one
	entry per application.

	The stats are read from the file given as argument, or from stdin
	when it is omitted or "-".`,
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name: "runs",
			Usage: "group adjacent runs of stats in a single " +
				"pass; the input must already be grouped " +
				"by host and application",
		},
	},
	Action: actionDecorator(stats),
}

// readStats is the action that decodes the stats at path.
func readStats(path string) iomonad.IO[[]statcollect.Stat] {
	return iomonad.New(func() ([]statcollect.Stat, error) {
		if path == "" || path == "-" {
			return statcollect.Decode(os.Stdin)
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return statcollect.Decode(f)
	})
}

func collectRuns(stats []statcollect.Stat) statcollect.Report {
	return statcollect.CollectRuns(seq.FromSlice(stats))
}

func stats(ctx *cli.Context, _ *config) error {
	collect := statcollect.Collect
	if ctx.Bool("runs") {
		collect = collectRuns
	}

	action := iomonad.Bind(readStats(ctx.Args().First()),
		func(stats []statcollect.Stat) iomonad.IO[fn.Unit] {
			demoLog.Infof("Read %d stats", len(stats))
			return printJSON(ctx.App.Writer, collect(stats))
		},
	)

	_, err := action.Run()
	return err
}
