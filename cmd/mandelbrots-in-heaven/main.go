package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/mandelbrots-in-heaven/audio"
	"github.com/lixenwraith/mandelbrots-in-heaven/config"
	"github.com/lixenwraith/mandelbrots-in-heaven/core"
	"github.com/lixenwraith/mandelbrots-in-heaven/explorer"
	"github.com/lixenwraith/mandelbrots-in-heaven/fractal"
	"github.com/lixenwraith/mandelbrots-in-heaven/service"
	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
	"github.com/lixenwraith/mandelbrots-in-heaven/viewport"
)

type flags struct {
	configPath string
	color      string
	palette    string
	iterations int64
	sound      bool
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Explore the Mandelbrot set in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if logFile := setupLogging(f.debug); logFile != nil {
				defer logFile.Close()
			}

			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("stdout is not a TTY (refusing to take over the screen)")
			}
			return run(cfg)
		},
	}

	bindFlags(cmd, &f)
	return cmd
}

func bindFlags(cmd *cobra.Command, f *flags) {
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "config file (default "+defaultConfigHint()+")")
	fl.StringVar(&f.color, "color", "auto", "color mode: auto, truecolor, 256")
	fl.StringVar(&f.palette, "palette", "", "initial palette name")
	fl.Int64Var(&f.iterations, "iterations", 0, "initial iteration budget")
	fl.BoolVar(&f.sound, "sound", false, "play audio cues on zoom")
	fl.BoolVar(&f.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
}

func defaultConfigHint() string {
	p, err := config.DefaultPath()
	if err != nil {
		return "none"
	}
	return p
}

// loadConfig reads the config file and applies explicitly set flags over it
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("color") {
		cfg.Display.Color = f.color
	}
	if fl.Changed("palette") {
		cfg.Display.Palette = f.palette
	}
	if fl.Changed("iterations") {
		cfg.View.Iterations = f.iterations
	}
	if fl.Changed("sound") {
		cfg.Audio.Enabled = f.sound
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	colorMode, err := terminal.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return err
	}
	palettes, err := cfg.PaletteSet()
	if err != nil {
		return err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	term, err := terminal.New(colorMode)
	if err != nil {
		return err
	}
	player := audio.NewPlayer(audio.Config{Enabled: cfg.Audio.Enabled, Volume: cfg.Audio.Volume})

	hub := service.NewHub()
	for _, svc := range []service.Service{&termService{term: term}, &audioService{player: player}} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var cues explorer.Cues
	if player.Active() {
		cues = player
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := cfg.View
	log.Printf("start: color=%s palette=%s origin=(%g,%g) size=%gx%g iterations=%d",
		colorMode, cfg.Display.Palette, v.OriginX, v.OriginY, v.SizeX, v.SizeY, v.Iterations)

	e := explorer.New(term, explorer.Options{
		Home: explorer.View{
			Origin:     fractal.Point{Re: v.OriginX, Im: v.OriginY},
			Size:       viewport.Extent{X: v.SizeX, Y: v.SizeY},
			Iterations: cfg.Iterations(),
		},
		ZoomFactor:  v.ZoomFactor,
		PanFraction: v.PanFraction,
		Palettes:    palettes,
		Palette:     cfg.Display.Palette,
		Keys:        keys,
		Cues:        cues,
	})
	if err := e.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
