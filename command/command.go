// Package command implements the interactive layer of the player: it
// parses one input line into a Command, dispatches commands against
// the playback session, and runs the read loop that drives both.
package command

import (
	"errors"
	"strconv"
	"strings"
)

// Kind discriminates the commands the interpreter understands.
type Kind string

const (
	// KindNone is a blank line: nothing is dispatched, nothing printed.
	KindNone    Kind = ""
	KindPlay    Kind = "play"
	KindPause   Kind = "pause"
	KindResume  Kind = "resume"
	KindStop    Kind = "stop"
	KindList    Kind = "list"
	KindStatus  Kind = "status"
	KindVolume  Kind = "volume"
	KindHelp    Kind = "help"
	KindExit    Kind = "exit"
	KindInvalid Kind = "invalid"
)

// Command is one parsed input line. Play carries its argument as the
// raw token so dispatch can tell a missing index from an unparsable
// one; Volume carries the parsed value.
type Command struct {
	Kind Kind
	// Arg is the second token of the line, lower-cased. It is captured
	// for every kind, whether or not the command uses it.
	Arg    string
	HasArg bool
	// Vol holds the parsed value for KindVolume.
	Vol float64
}

var (
	// ErrMissingVolume reports a volume command without a value.
	ErrMissingVolume = errors.New("volume level missing")
	// ErrInvalidVolume reports a volume value that is not a number.
	ErrInvalidVolume = errors.New("volume level not a number")
)

// Parse turns one input line into a Command. The first whitespace
// token, lower-cased, selects the kind; the second token, lower-cased,
// is captured as the argument regardless of the command; anything
// after the second token is ignored. Volume parses its value here, so
// a bad value never reaches dispatch.
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{Kind: KindNone}, nil
	}

	cmd := Command{}
	if len(tokens) > 1 {
		cmd.Arg = strings.ToLower(tokens[1])
		cmd.HasArg = true
	}

	switch strings.ToLower(tokens[0]) {
	case "play":
		cmd.Kind = KindPlay
	case "pause":
		cmd.Kind = KindPause
	case "resume":
		cmd.Kind = KindResume
	case "stop":
		cmd.Kind = KindStop
	case "list":
		cmd.Kind = KindList
	case "status":
		cmd.Kind = KindStatus
	case "help":
		cmd.Kind = KindHelp
	case "exit":
		cmd.Kind = KindExit
	case "volume":
		if !cmd.HasArg {
			return Command{}, ErrMissingVolume
		}
		vol, err := strconv.ParseFloat(cmd.Arg, 64)
		if err != nil {
			return Command{}, ErrInvalidVolume
		}
		cmd.Kind = KindVolume
		cmd.Vol = vol
	default:
		cmd.Kind = KindInvalid
	}
	return cmd, nil
}
