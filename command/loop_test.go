package command

import (
	"strings"
	"testing"
)

func TestLoopRunsUntilExit(t *testing.T) {
	d, engine, out := newTestDispatcher(t)

	Loop(d, strings.NewReader("play 1\nexit\n"))

	got := out.String()
	if !strings.Contains(got, "Now playing:") {
		t.Errorf("loop output missing now-playing report:\n%s", got)
	}
	if n := strings.Count(got, "musicplayer>"); n != 2 {
		t.Errorf("prompt printed %d times, want 2:\n%s", n, got)
	}

	d.Session.Close()
	if engine.handles[0].released != 1 {
		t.Errorf("handle released %d times, want 1", engine.handles[0].released)
	}
}

func TestLoopEndOfInputBehavesLikeExit(t *testing.T) {
	d, engine, out := newTestDispatcher(t)

	Loop(d, strings.NewReader("play 1\n"))

	got := out.String()
	if !strings.Contains(got, "Now playing:") {
		t.Errorf("loop output missing now-playing report:\n%s", got)
	}
	if n := strings.Count(got, "musicplayer>"); n != 2 {
		t.Errorf("prompt printed %d times, want 2:\n%s", n, got)
	}

	// The loop's caller closes the session after the loop returns,
	// whichever way it ended.
	d.Session.Close()
	if engine.handles[0].released != 1 {
		t.Errorf("handle released %d times, want 1", engine.handles[0].released)
	}
}

func TestLoopReportsParseErrorsAndKeepsGoing(t *testing.T) {
	d, _, out := newTestDispatcher(t)

	Loop(d, strings.NewReader("volume\nvolume loud\nexit\n"))

	got := out.String()
	if !strings.Contains(got, "Missing volume value") {
		t.Errorf("loop output missing missing-volume report:\n%s", got)
	}
	if !strings.Contains(got, "Invalid volume value") {
		t.Errorf("loop output missing invalid-volume report:\n%s", got)
	}
	if n := strings.Count(got, "musicplayer>"); n != 3 {
		t.Errorf("loop did not keep going to exit, %d prompts:\n%s", n, got)
	}
}

func TestLoopRepromptsOnBlankLines(t *testing.T) {
	d, _, out := newTestDispatcher(t)

	Loop(d, strings.NewReader("\n\nexit\n"))

	got := out.String()
	if n := strings.Count(got, "musicplayer>"); n != 3 {
		t.Errorf("prompt printed %d times, want 3:\n%s", n, got)
	}
	if strings.Contains(got, "Error:") {
		t.Errorf("blank lines reported an error:\n%s", got)
	}
}
