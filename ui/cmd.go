package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"cellboard/src"
	"cellboard/src/base"
	"cellboard/src/logx"
	"cellboard/src/position"
	clic "cellboard/ui/cli"
	"cellboard/ui/gui"
	"cellboard/ui/gui/gbase"
	"cellboard/ui/gui/gbase/gconf"
)

const logfile string = "cellboard.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.LevelFromString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// newController builds the shared board controller from config and the
// optional FEN override.
func newController(conf *gconf.Config, fen string, l logx.Logger) (*src.BoardController, error) {
	if fen == "" {
		fen = conf.FEN
	}
	bc := src.NewBoardController(l)
	bc.SetTheme(gbase.CellTheme(conf.Theme, conf.CornerRadius))
	bc.SetOrientation(base.OrientationFromString(conf.Orientation))
	bc.SetAutoPromote(conf.AutoPromote)
	if fen != "" {
		mb, err := position.FromFEN(fen)
		if err != nil {
			return nil, fmt.Errorf("bad fen: %w", err)
		}
		bc.SetPosition(mb)
	}
	return bc, nil
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	l := GetLogger(file, c)

	confFile := c.String("config")
	conf, err := gconf.Load(confFile)
	if err != nil {
		fmt.Printf("error read config: %v", err)
		return nil
	}
	if c.Bool("debug") {
		conf.Debug = true
	}

	bc, err := newController(conf, c.String("fen"), l)
	if err != nil {
		fmt.Printf("error: %v", err)
		return nil
	}
	g, err := gui.NewGUI(bc, conf, confFile, l)
	if err != nil {
		return err
	}
	return g.Run()
}

func RunCellboard() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "string FEN placement",
	}
	cff := &cli.StringFlag{
		Name:  "config",
		Value: "cellboard.json",
		Usage: "path to config file",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	cliff := []cli.Flag{ff, cff, df, lf, cf}
	guiff := []cli.Flag{ff, cff, df, lf, cf}

	return (&cli.Command{
		Name:  "cellboard",
		Usage: "interactive board widget",
		Flags: guiff,
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
					if err != nil {
						fmt.Printf("error open logfile: %v", err)
						return nil
					}
					defer file.Close()
					l := GetLogger(file, c)

					conf, err := gconf.Load(c.String("config"))
					if err != nil {
						fmt.Printf("error read config: %v", err)
						return nil
					}
					bc, err := newController(conf, c.String("fen"), l)
					if err != nil {
						fmt.Printf("error: %v", err)
						return nil
					}

					clic.EnableANSI()
					cl := clic.NewCLI(bc, l)
					if err := cl.Run(); err != nil {
						fmt.Printf("error cellboard: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "gui",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v", err)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
