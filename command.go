package flyscene

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/EngoEngine/engo"
	colorable "github.com/mattn/go-colorable"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Options struct {
	Title        string
	Ground       bool
	BindingsPath string
	Width        int
	Height       int
	FPS          int
	RenderScale  float32
	Headless     bool
	LogLevel     string
	Profile      string
}

func DefaultOptions(title string, ground bool) Options {
	return Options{
		Title:       title,
		Ground:      ground,
		Width:       1024,
		Height:      768,
		FPS:         60,
		RenderScale: 0.5,
		Headless:    !hasDisplay(),
		LogLevel:    "info",
	}
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "" || runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

// NewCommand builds the CLI for one demo binary.
func NewCommand(use, title string, ground bool) *cobra.Command {
	opts := DefaultOptions(title, ground)

	cmd := &cobra.Command{
		Use:           use,
		Short:         fmt.Sprintf("%s: fly around a PBR-lit sphere", title),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.BindingsPath, "bindings", "", "key bindings file (default <root>/config/key_bindings.yaml)")
	f.IntVar(&opts.Width, "width", opts.Width, "window width")
	f.IntVar(&opts.Height, "height", opts.Height, "window height")
	f.IntVar(&opts.FPS, "fps", opts.FPS, "frame rate limit")
	f.Float32Var(&opts.RenderScale, "render-scale", opts.RenderScale, "internal resolution as a fraction of the window")
	f.BoolVar(&opts.Headless, "headless", opts.Headless, "run without a window")
	f.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level (debug, info, warn, error)")
	f.StringVar(&opts.Profile, "profile", "", "write a cpu or mem profile to the working directory")
	return cmd
}

func ConfigureLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	logrus.SetOutput(colorable.NewColorableStdout())
	return nil
}

func startProfile(mode string) (func(), error) {
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil
	}
	return nil, fmt.Errorf("unknown profile mode %q", mode)
}

// ResolveBindingsPath falls back to config/key_bindings.yaml under the application root.
func ResolveBindingsPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	root, err := ApplicationRootDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ConfigDir, "key_bindings.yaml"), nil
}

func Run(opts Options) error {
	if err := ConfigureLogging(opts.LogLevel); err != nil {
		return err
	}

	stop, err := startProfile(opts.Profile)
	if err != nil {
		return err
	}
	defer stop()

	path, err := ResolveBindingsPath(opts.BindingsPath)
	if err != nil {
		return err
	}
	bindings, err := LoadBindings(path)
	if err != nil {
		return err
	}

	scene := &DemoScene{
		Name:        opts.Title,
		Ground:      opts.Ground,
		Width:       opts.Width,
		Height:      opts.Height,
		RenderScale: opts.RenderScale,
		Bindings:    bindings,
	}

	log.WithFields(logrus.Fields{
		"width":    opts.Width,
		"height":   opts.Height,
		"headless": opts.Headless,
		"ground":   opts.Ground,
	}).Info("Starting")

	engo.Run(engo.RunOptions{
		Title:        opts.Title,
		Width:        opts.Width,
		Height:       opts.Height,
		HeadlessMode: opts.Headless,
		FPSLimit:     opts.FPS,
	}, scene)
	return nil
}
