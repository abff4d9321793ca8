package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Loop reads commands from in until the exit command, end of input, or
// an interrupt. Commands run strictly one at a time. The caller owns
// session teardown and performs it after Loop returns, whichever way
// the loop ends.
func Loop(d *Dispatcher, in io.Reader) {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		fmt.Fprint(d.Out, promptStyle.Render("musicplayer>")+" ")

		select {
		case line, ok := <-lines:
			if !ok {
				// end of input behaves like the exit command
				fmt.Fprintln(d.Out)
				return
			}
			cmd, err := Parse(line)
			if err != nil {
				d.reportParseError(err)
				continue
			}
			if d.Handle(cmd) {
				return
			}
		case <-sigChan:
			fmt.Fprintln(d.Out)
			d.info("Exiting...")
			return
		}
	}
}

// reportParseError maps parse-stage failures to operator messages.
// Nothing is dispatched for these lines and no state changes.
func (d *Dispatcher) reportParseError(err error) {
	switch {
	case errors.Is(err, ErrMissingVolume):
		d.errorf("Missing volume value")
	case errors.Is(err, ErrInvalidVolume):
		d.errorf("Invalid volume value")
	default:
		d.errorf("%v", err)
	}
}
