package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/Parado-xy/rust-cli-player/audio"
	"github.com/Parado-xy/rust-cli-player/catalog"
	"github.com/Parado-xy/rust-cli-player/command"
	"github.com/Parado-xy/rust-cli-player/player"
	"github.com/spf13/cobra"
)

type Params struct {
	Dir     string `short:"d" optional:"true" help:"Directory containing your music files."`
	HowTo   bool   `optional:"true" help:"Show usage instructions and exit."`
	Notify  bool   `optional:"true" help:"Show a desktop notification when a track starts."`
	Verbose bool   `short:"v" optional:"true" help:"Enable debug logging."`
}

func main() {
	boa.CmdT[Params]{
		Use:         "musicplayer",
		Short:       "Interactive command-driven player for local audio files",
		Version:     appVersion(),
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := run(params); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "musicplayer: %v\n", err)
				os.Exit(1)
			}
		},
	}.Run()
}

func run(params *Params) error {
	setupLogging(params.Verbose)

	if params.HowTo {
		fmt.Print(command.Usage())
		return nil
	}

	if params.Dir == "" {
		return fmt.Errorf("no music directory given: pass --dir <path>, or --how-to for instructions")
	}
	dir, err := filepath.Abs(params.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", params.Dir, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access music directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	entries, err := catalog.ScanDir(dir)
	if err != nil {
		return err
	}
	cat := catalog.New(entries)
	slog.Debug("catalog built", "dir", dir, "tracks", cat.Len())

	if err := audio.Init(); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	if !audio.Available {
		slog.Warn("built without cgo: commands work but no sound is produced")
	}

	session := player.NewSession(cat, audio.NewEngine())
	defer session.Close()

	dispatcher := &command.Dispatcher{
		Session: session,
		Catalog: cat,
		Out:     os.Stdout,
		Notify:  params.Notify,
	}

	dispatcher.Welcome(dir)
	command.Loop(dispatcher, os.Stdin)
	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func defaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
