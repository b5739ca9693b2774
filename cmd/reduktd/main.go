package main

import (
	"fmt"
	"os"

	"github.com/SSSOC-CAN/redukt/intercept"
	"github.com/SSSOC-CAN/redukt/reduktd"
	"github.com/urfave/cli"
)

// fatal exits the process and prints out error information
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[reduktd] %v\n", err)
	os.Exit(1)
}

// main is the entry point for the reduktd demo daemon
func main() {
	app := cli.NewApp()
	app.Name = "reduktd"
	app.Usage = "Demo daemon for the redukt typed action creator and reducer library"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "console",
			Usage: "Output logs to the console as well as the logfile",
		},
		cli.Int64Flag{
			Name:  "session_interval",
			Usage: "Seconds between simulated login sessions, overrides the config file value",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		config := reduktd.InitConfig()
		if ctx.GlobalBool("console") {
			config.ConsoleOutput = true
		}
		if interval := ctx.GlobalInt64("session_interval"); interval > 0 {
			config.SessionInterval = interval
		}
		shutdownInterceptor, err := intercept.InitInterceptor()
		if err != nil {
			return err
		}
		log, err := reduktd.InitLogger(&config)
		if err != nil {
			return err
		}
		shutdownInterceptor.Logger = &log
		return reduktd.Main(shutdownInterceptor, config, log)
	}
	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
