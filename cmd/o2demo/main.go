package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hyperjiang/o2sched"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

var globalFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "YAML scheduler config `FILE`",
	},
	cli.BoolFlag{
		Name:  "verbose, v",
		Usage: "log scheduler events",
	},
}

// Execute runs the demo with the given command line.
func Execute(args []string) error {
	return newApp(os.Stdout).Run(args)
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Writer = w
	app.Name = "o2demo"
	app.Usage = "drive the deferred-delivery scheduler with sample workloads"
	app.UsageText = "o2demo [global options] <command> [arguments...]"
	app.Flags = globalFlags
	app.Commands = []cli.Command{
		{
			Name:   "pingpong",
			Usage:  "two services that send to each other from their handlers",
			Action: pingpong,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 100000,
					Usage: "messages to exchange",
				},
				cli.IntFlag{
					Name:  "report",
					Value: 10000,
					Usage: "print progress every `N` messages",
				},
			},
		},
		{
			Name:   "clockmaster",
			Usage:  "a global-clock handler that re-schedules itself every second",
			Action: clockmaster,
			Flags: []cli.Flag{
				cli.DurationFlag{
					Name:  "duration, d",
					Value: 5 * time.Second,
					Usage: "how long to run",
				},
				cli.Float64Flag{
					Name:  "offset",
					Value: 1000,
					Usage: "global minus local time in seconds",
				},
				cli.Float64Flag{
					Name:  "period",
					Value: 1,
					Usage: "seconds between status reports",
				},
			},
		},
	}

	return app
}

// options loads the config named by the global flags.
func options(ctx *cli.Context) ([]o2sched.Option, error) {
	var cfg o2sched.Config
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = o2sched.LoadConfig(afero.NewOsFs(), path); err != nil {
			return nil, err
		}
	}
	if ctx.GlobalBool("verbose") {
		cfg.Verbose = true
	}
	return cfg.Options(), nil
}

func main() {
	if err := Execute(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
