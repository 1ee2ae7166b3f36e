package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/iomonad"
	"github.com/lightningnetwork/fp/urlrouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli"
)

var routeCommand = cli.Command{
	Name:      "route",
	Category:  "Examples",
	Usage:     "Resolve URLs against the demo site's routes.",
	ArgsUsage: "url [url...]",
	Description: `
	Print the page each URL renders to. The demo site serves the story
	index at /stories/, single stories at /stories/<id> and user pages
	at /users/<id>/. URLs that match no route print Nothing.`,
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "metrics",
			Usage: "print the router's metrics after routing",
		},
	},
	Action: actionDecorator(route),
}

// demoRouter builds the demo site, mounting the story routes under the
// main router.
func demoRouter() *urlrouter.Router {
	stories := urlrouter.MustNew(
		urlrouter.Rule{
			Pattern: `$`,
			View: urlrouter.Text(func(...string) string {
				return "Stories"
			}),
		},
		urlrouter.Rule{
			Pattern: `(.+)`,
			View: urlrouter.Text(func(args ...string) string {
				return "Story " + args[0]
			}),
		},
	)

	return urlrouter.MustNew(
		urlrouter.Rule{
			Pattern: `/stories/([^/]*)`,
			View:    stories.Handler(),
		},
		urlrouter.Rule{
			Pattern: `/users/([^/]+)/`,
			View: urlrouter.Text(func(args ...string) string {
				return "User " + args[0]
			}),
		},
	)
}

// printMetrics is the action that writes everything registered with
// registry to w in the text exposition format.
func printMetrics(w io.Writer,
	registry *prometheus.Registry) iomonad.IO[fn.Unit] {

	return iomonad.New(func() (fn.Unit, error) {
		families, err := registry.Gather()
		if err != nil {
			return fn.Unit{}, err
		}

		for _, family := range families {
			_, err := expfmt.MetricFamilyToText(w, family)
			if err != nil {
				return fn.Unit{}, err
			}
		}

		return fn.Unit{}, nil
	})
}

func route(ctx *cli.Context, cfg *config) error {
	urls := []string(ctx.Args())
	if len(urls) == 0 {
		return errors.New("at least one url required")
	}

	router := demoRouter()
	registry := prometheus.NewRegistry()
	if err := registry.Register(router); err != nil {
		return err
	}

	show := func(url string) iomonad.IO[fn.Unit] {
		line := fmt.Sprintf("%s -> %v", url, router.Route(url))
		return iomonad.PrintLn(ctx.App.Writer, line)
	}

	action := iomonad.Then(
		iomonad.MapM_(show, urls),
		iomonad.When(
			cfg.Metrics || ctx.Bool("metrics"),
			printMetrics(ctx.App.Writer, registry),
		),
	)

	_, err := action.Run()
	return err
}
