package main

import (
	"context"
	"fmt"
	"os"
)

const defaultVersion = "dev"

// Version information (set by GoReleaser, otherwise read from build info)
var (
	version = defaultVersion
	commit  = ""
	date    = ""
)

func main() {
	initVersion()

	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
