package command

import (
	"fmt"
	"strings"
)

// usageEntries lists every command in the order help shows them.
var usageEntries = []struct {
	command string
	descr   string
}{
	{"play <number>", "Play the track with the given number"},
	{"pause", "Pause the current track"},
	{"resume", "Resume the paused track"},
	{"stop", "Stop the current playback"},
	{"volume <0.0-1.0>", "Set playback volume"},
	{"status", "Show player status"},
	{"list", "Show available tracks"},
	{"help", "Show this help message"},
	{"exit", "Exit the program"},
}

// Usage returns the command reference shown by help and --how-to.
func Usage() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Music Player Usage Instructions:") + "\n")
	b.WriteString(titleStyle.Render("--------------------------------") + "\n")
	b.WriteString(titleStyle.Render("Commands:") + "\n")
	for _, e := range usageEntries {
		fmt.Fprintf(&b, "  %s - %s\n", labelStyle.Render(fmt.Sprintf("%-17s", e.command)), e.descr)
	}
	b.WriteString("\n" + titleStyle.Render("Example:") + "\n")
	b.WriteString("  musicplayer --dir /path/to/music/directory\n")
	return b.String()
}
