package ui

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"blockpuzzle/src"
	"blockpuzzle/src/engine/myengine"
	"blockpuzzle/src/feedback"
	"blockpuzzle/src/logx"
	clic "blockpuzzle/ui/cli"
	"blockpuzzle/ui/gui"
	"blockpuzzle/ui/tui"

	"github.com/urfave/cli/v3"
)

const logfile string = "blockpuzzle.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func newBuilder(c *cli.Command, logger logx.Logger) *src.GameBuilder {
	seed := c.Int("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debugf("rng seed %d", seed)
	gb := src.NewBuilderBoard(logger, rand.New(rand.NewSource(seed)))
	gb.SetEngineWorker(myengine.NewGreedyEngine())
	gb.NewGame()
	return gb
}

func audioConfig(c *cli.Command) feedback.AudioConfig {
	cfg := feedback.LoadAudioConfig()
	if c.Bool("mute") {
		cfg.Enabled = false
	}
	return cfg
}

func openLog() (*os.File, error) {
	return os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

func RunGUI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync()

	g, err := gui.NewGUI(newBuilder(c, logger), audioConfig(c), logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return err
	}
	return g.Run()
}

func RunTUI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync()

	var player tui.Player
	if cfg := audioConfig(c); cfg.Enabled {
		sp := feedback.NewSpeaker(feedback.NewSynth(cfg))
		if err := sp.Init(); err != nil {
			logger.Warnf("audio disabled: %v", err)
		} else {
			defer sp.Close()
			player = sp
		}
	}
	return tui.RunTUI(newBuilder(c, logger), player, logger)
}

func RunBlockPuzzle() error {
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level (" + strings.Join(logx.LevelNames(), ", ") + ")",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	sf := &cli.IntFlag{
		Name:  "seed",
		Usage: "piece generator seed, 0 for random",
	}
	mf := &cli.BoolFlag{
		Name:  "mute",
		Usage: "disable sound",
	}
	cliff := []cli.Flag{df, lf, cf, sf}
	uiff := []cli.Flag{df, lf, cf, sf, mf}

	return (&cli.Command{
		Name:  "blockpuzzle",
		Usage: "9x9 block puzzle game",
		Flags: uiff,
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "line based game in the terminal",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					file, err := openLog()
					if err != nil {
						fmt.Printf("error open logfile: %v", err)
						return nil
					}
					defer file.Close()
					logger := GetLogger(file, c)
					defer logger.Sync()

					clic.EnableANSI()
					cl := clic.NewCLI(newBuilder(c, logger), clic.PrintSnapshot)
					if err := cl.Run(); err != nil {
						fmt.Printf("error blockpuzzle: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "tui",
				Usage: "full screen terminal game with mouse drag and drop",
				Flags: uiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunTUI(c); err != nil {
						fmt.Printf("error TUI: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "gui",
				Usage: "windowed game",
				Flags: uiff,
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
