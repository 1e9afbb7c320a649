package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/zxscreen"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "zxscreen"
	app.Usage = "Convert images to ZX Spectrum bitmap and attribute data"
	app.Version = "1.0.0"
	app.ArgsUsage = "INPUT OUTPUT"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "label",
			Aliases: []string{"l"},
			EnvVars: []string{"ZXSCREEN_LABEL"},
			Value:   zxscreen.DefaultLabel,
			Usage:   "label name for the sprite data",
		},
		&cli.BoolFlag{
			Name:  "preshifted",
			Usage: "generate 8 pre-shifted versions for smooth scrolling",
		},
		&cli.StringFlag{
			Name:  "tileset",
			Usage: "treat as tileset, e.g. 16x16 (currently ignored)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   zxscreen.FormatAsm.String(),
			Usage:   "output format, one of asm, bin or scr",
		},
		&cli.StringFlag{
			Name:    "preview",
			Aliases: []string{"p"},
			Usage:   "also write a PNG preview of the result to `FILE`",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 1,
			Usage: "scale factor for the preview",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 2 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		format, err := zxscreen.ParseFormat(c.String("format"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		opts := zxscreen.Options{
			Label:      c.String("label"),
			Preshifted: c.Bool("preshifted"),
			Tileset:    c.String("tileset"),
			Format:     format,
			Preview:    c.String("preview"),
			Scale:      c.Int("scale"),
		}

		if err := zxscreen.New(logger).Convert(c.Args().Get(0), c.Args().Get(1), opts); err != nil {
			return cli.NewExitError(err, 1)
		}

		logger.Println("Done!")

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
