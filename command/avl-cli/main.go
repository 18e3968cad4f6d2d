// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build an AVL set from integer arguments and operate on it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "print the tree structure",
			ArgsUsage: "VALUE...",
			Action:    runPrint,
		},
		{
			Name:      "list",
			Usage:     "list the values in ascending order",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " list in descending order",
				},
			},
			Action: runList,
		},
		{
			Name:      "check",
			Usage:     "verify the tree invariants and show a summary",
			ArgsUsage: "VALUE...",
			Action:    runCheck,
		},
		{
			Name:      "digest",
			Usage:     "show the SHA3-256 content digest",
			ArgsUsage: "VALUE...",
			Action:    runDigest,
		},
		{
			Name:      "union",
			Usage:     "values in either set",
			ArgsUsage: "VALUE...\n   (* = required)",
			Flags:     withFlags(),
			Action:    runAlgebra(union),
		},
		{
			Name:      "intersection",
			Usage:     "values in both sets",
			ArgsUsage: "VALUE...\n   (* = required)",
			Flags:     withFlags(),
			Action:    runAlgebra(intersection),
		},
		{
			Name:      "difference",
			Usage:     "values not in the second set",
			ArgsUsage: "VALUE...\n   (* = required)",
			Flags:     withFlags(),
			Action:    runAlgebra(difference),
		},
		{
			Name:      "remove",
			Usage:     "remove values then print the tree",
			ArgsUsage: "VALUE...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "values, r",
					Value: "",
					Usage: "*values to remove `V1,V2,...`",
				},
			},
			Action: runRemove,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func withFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "with, w",
			Value: "",
			Usage: "*second set `V1,V2,...`",
		},
	}
}
