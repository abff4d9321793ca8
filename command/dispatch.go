package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/gen2brain/beeep"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"golang.org/x/term"

	"github.com/Parado-xy/rust-cli-player/catalog"
	"github.com/Parado-xy/rust-cli-player/player"
)

// Dispatcher executes parsed commands against the playback session and
// writes operator-facing reports to Out.
type Dispatcher struct {
	Session *player.Session
	Catalog *catalog.Catalog
	Out     io.Writer
	Notify  bool
}

// Handle runs one command and reports whether the loop should quit.
// State-machine no-ops (pause while idle, stop while stopped, ...)
// print nothing.
func (d *Dispatcher) Handle(cmd Command) bool {
	switch cmd.Kind {
	case KindNone:
	case KindPlay:
		d.play(cmd)
	case KindPause:
		if d.Session.Pause() {
			d.info("Playback paused")
		}
	case KindResume:
		if d.Session.Resume() {
			d.info("Playback resumed")
		}
	case KindStop:
		if d.Session.Stop() {
			d.info("Playback stopped")
		}
	case KindList:
		d.list()
	case KindStatus:
		d.status()
	case KindVolume:
		d.setVolume(cmd.Vol)
	case KindHelp:
		fmt.Fprint(d.Out, Usage())
	case KindExit:
		return true
	default:
		d.errorf("Invalid command - type 'help' for instructions")
	}
	return false
}

// Welcome prints the startup greeting, the loaded directory and the
// initial catalog listing.
func (d *Dispatcher) Welcome(dir string) {
	fmt.Fprintf(d.Out, "\n%s\n", playingStyle.Render("Welcome to Music Player!"))
	fmt.Fprintf(d.Out, "Loaded directory: %s\n", nameStyle.Render(dir))
	fmt.Fprintf(d.Out, "Found %s songs.\n", infoStyle.Render(strconv.Itoa(d.Catalog.Len())))
	d.list()
}

func (d *Dispatcher) play(cmd Command) {
	if !cmd.HasArg {
		d.errorf("Please provide a song index")
		return
	}
	index, err := strconv.Atoi(cmd.Arg)
	if err != nil {
		d.errorf("Invalid song index")
		return
	}

	track, err := d.Session.Play(index)
	switch {
	case errors.Is(err, player.ErrInvalidIndex):
		d.errorf("Invalid song index")
	case err != nil:
		d.errorf("%v", err)
	default:
		fmt.Fprintf(d.Out, "%s %s\n", playingStyle.Render("Now playing:"), nameStyle.Render(track.Name))
		d.notifyTrack(track)
	}
}

func (d *Dispatcher) list() {
	current := d.Session.Status().Track

	fmt.Fprintf(d.Out, "\n%s\n", playingStyle.Render("Available Songs:"))
	t := table.NewWriter()
	t.SetOutputMirror(d.Out)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(terminalWidth())
	t.AppendHeader(table.Row{"Index", "Filename"})
	for _, tr := range d.Catalog.Tracks() {
		if current != nil && current.Index == tr.Index {
			t.AppendRow(table.Row{
				playingStyle.Render(strconv.Itoa(tr.Index)),
				playingStyle.Render(tr.Name + " ▶"),
			})
			continue
		}
		t.AppendRow(table.Row{tr.Index, tr.Name})
	}
	t.Render()
}

func (d *Dispatcher) status() {
	st := d.Session.Status()

	fmt.Fprintf(d.Out, "\n%s\n", titleStyle.Render("Player Status:"))
	fmt.Fprintln(d.Out, titleStyle.Render("--------------"))
	if st.Track == nil {
		fmt.Fprintf(d.Out, "  %s No song playing\n", labelStyle.Render("Song:"))
	} else {
		fmt.Fprintf(d.Out, "  %s %s\n", labelStyle.Render("Song:"), nameStyle.Render(st.Track.Name))
		fmt.Fprintf(d.Out, "  %s %s\n", labelStyle.Render("State:"), stateLabel(st.State))
		seconds := strconv.Itoa(int(st.Elapsed.Seconds()))
		fmt.Fprintf(d.Out, "  %s %s seconds\n", labelStyle.Render("Elapsed:"), elapsedStyle.Render(seconds))
	}
	fmt.Fprintf(d.Out, "  %s %.1f\n", labelStyle.Render("Volume:"), st.Volume)
}

func stateLabel(s player.State) string {
	switch s {
	case player.StatePlaying:
		return successStyle.Render("Playing")
	case player.StatePaused:
		return infoStyle.Render("Paused")
	default:
		return lo.Capitalize(string(s))
	}
}

func (d *Dispatcher) setVolume(v float64) {
	if err := d.Session.SetVolume(v); err != nil {
		d.errorf("Volume must be 0.0 to 1.0")
		return
	}
	d.success(fmt.Sprintf("Volume set to %.1f", v))
}

func (d *Dispatcher) notifyTrack(track catalog.Track) {
	if !d.Notify {
		return
	}
	if err := beeep.Notify("musicplayer", "Now playing: "+track.Name, ""); err != nil {
		slog.Debug("desktop notification failed", "error", err)
	}
}

func (d *Dispatcher) info(msg string) {
	fmt.Fprintf(d.Out, "%s %s\n", infoStyle.Render("Info:"), msg)
}

func (d *Dispatcher) success(msg string) {
	fmt.Fprintf(d.Out, "%s %s\n", successStyle.Render("Success:"), msg)
}

func (d *Dispatcher) errorf(format string, args ...any) {
	fmt.Fprintf(d.Out, "%s %s\n", errorStyle.Render("Error:"), fmt.Sprintf(format, args...))
}

// terminalWidth returns the stdout terminal width, or a default when
// stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 120
	}
	return width
}
