package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kmckinnon/bmpcat"
	"github.com/kmckinnon/bmpcat/bitmap"
	"github.com/kmckinnon/bmpcat/terminal"
	"github.com/urfave/cli/v2"
)

const defaultDB = "bmpcat.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func decodeFile(file string) (*bitmap.Bitmap, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return bitmap.Decode(b)
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "bmpcat"
	app.Usage = "BMP terminal viewer and converter"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BMPCAT_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "draw",
			Usage:       "Draw a bitmap in the terminal",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "no-truecolor",
					Usage: "use the 16 color palette even when the terminal supports truecolor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				bmp, err := decodeFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				img, err := bmp.ToImage()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				// Normalize through a 24-bit re-encode so indexed and
				// mirrored inputs all draw the same way.
				flat, err := bitmap.FromImage(img, bitmap.ConvertOptions{
					BitDepth:    24,
					Compression: 0,
					XResolution: bmp.InfoHeader.XResolution,
					YResolution: bmp.InfoHeader.YResolution,
				})
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if img, err = flat.ToImage(); err != nil {
					return cli.NewExitError(err, 1)
				}

				terminal.Draw(os.Stdout, img, &terminal.Settings{
					UseTruecolor: terminal.TruecolorSupported() && !c.Bool("no-truecolor"),
					Shades:       terminal.DefaultShades,
				})

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Re-encode a bitmap with a different bit depth",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "depth",
					Value: 24,
					Usage: "target bit depth (1, 4, 8, 24 or 32)",
				},
				&cli.StringFlag{
					Name:  "out",
					Usage: "output path",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				bmp, err := decodeFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				img, err := bmp.ToImage()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				depth := c.Int("depth")
				if capacity := 1 << uint(depth); depth <= 8 && bmpcat.DistinctColors(img) > capacity {
					img = bmpcat.Quantize(img, capacity)
				}

				out, err := bitmap.FromImage(img, bitmap.ConvertOptions{
					BitDepth:    uint16(depth),
					Compression: 0,
					XResolution: bmp.InfoHeader.XResolution,
					YResolution: bmp.InfoHeader.YResolution,
				})
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				b, err := out.Encode()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				path := c.String("out")
				if path == "" {
					path = fmt.Sprintf("img%d.bmp", time.Now().UnixNano()/int64(time.Millisecond))
				}

				if err := os.WriteFile(path, b, 0644); err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("Wrote file %s\n", path)

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Print bitmap header metadata",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				bmp, err := decodeFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("File size:\t%d bytes\n", bmp.Header.FileSize)
				fmt.Printf("Data offset:\t%d\n", bmp.Header.DataOffset)
				fmt.Printf("Width:\t\t%d px\n", bmp.InfoHeader.Width)
				fmt.Printf("Height:\t\t%d px\n", bmp.InfoHeader.Height)
				fmt.Printf("Bit depth:\t%d\n", bmp.InfoHeader.BitDepth)
				fmt.Printf("Compression:\t%d\n", bmp.InfoHeader.Compression)
				fmt.Printf("Resolution:\t%d x %d px/m\n", bmp.InfoHeader.XResolution, bmp.InfoHeader.YResolution)
				fmt.Printf("Palette:\t%d colors\n", len(bmp.ColorTable.Colors))
				fmt.Printf("Pixels:\t\t%d\n", bmp.Pixels.Len())

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan a directory tree and catalog every bitmap",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(io.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				m, err := bmpcat.New(c.String("db"), logger)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
