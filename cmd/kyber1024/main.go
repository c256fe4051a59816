// main.go - Kyber1024 command line driver.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Command kyber1024 exercises the Kyber1024 KEM and persists every
// artifact it produces as hex text, for inspection and for cross
// implementation comparisons.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"gitlab.com/yawning/kyber1024.git"
)

// Version is overridden at link time.
var Version = "DEV"

func newApp() *cli.App {
	return &cli.App{
		Name:      "kyber1024",
		Usage:     "Kyber1024 key encapsulation driver",
		UsageText: "kyber1024 [global options] command [command options]",
		Version:   fmt.Sprintf("%s (Kyber round 3, %s)", Version, kyber1024.UpstreamVersion),
		Flags:     flags(),
		Commands:  commands(),
		Action:    demo,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "kyber1024: %v\n", err)
		os.Exit(1)
	}
}
