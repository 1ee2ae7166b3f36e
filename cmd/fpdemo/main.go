package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/iomonad"
	"github.com/urfave/cli"
)

const defaultDebugLevel = "info"

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[fpdemo] %v\n", err)
	os.Exit(1)
}

// actionDecorator loads the config, applies the global flags over it and
// runs a command's action with the result.
func actionDecorator(
	f func(*cli.Context, *config) error) func(*cli.Context) error {

	return func(c *cli.Context) error {
		cfg, err := loadConfig(c.GlobalString("configfile"))
		if err != nil {
			return err
		}

		if c.GlobalIsSet("debuglevel") {
			cfg.DebugLevel = c.GlobalString("debuglevel")
		}
		if err := setLogLevels(cfg.DebugLevel); err != nil {
			return err
		}

		return f(c, cfg)
	}
}

// printJSON is the action that writes v to w as indented JSON.
func printJSON(w io.Writer, v any) iomonad.IO[fn.Unit] {
	return iomonad.New(func() (fn.Unit, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return fn.Unit{}, fmt.Errorf("unable to encode: %w", err)
		}

		var out bytes.Buffer
		if err := json.Indent(&out, b, "", "\t"); err != nil {
			return fn.Unit{}, err
		}
		out.WriteString("\n")

		_, err = out.WriteTo(w)
		return fn.Unit{}, err
	})
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "fpdemo"
	app.Usage = "run the functional programming examples"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "configfile",
			Usage: "path to an ini style config file",
		},
		cli.StringFlag{
			Name:  "debuglevel",
			Value: defaultDebugLevel,
			Usage: "logging level for all subsystems {trace, " +
				"debug, info, warn, error, critical, off}",
		},
	}
	app.Commands = []cli.Command{
		statsCommand,
		routeCommand,
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
