package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// switchSpinner animates "Switching to <branch>" on a terminal while a
// checkout runs. Frames come from a bubbles spinner advanced by hand.
type switchSpinner struct {
	out     io.Writer
	model   spinner.Model
	label   string
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func newSwitchSpinner(out io.Writer, p palette, branch string) *switchSpinner {
	return &switchSpinner{
		out: out,
		model: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(p.spin),
		),
		label:   "Switching to " + p.accentText(branch),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (s *switchSpinner) frame() string {
	return "\r" + s.model.View() + " " + s.label
}

func (s *switchSpinner) advance() {
	s.model, _ = s.model.Update(s.model.Tick())
}

func (s *switchSpinner) start(delay time.Duration) {
	go func() {
		defer close(s.stopped)
		timer := time.NewTimer(max(delay, 0))
		defer timer.Stop()
		select {
		case <-s.done:
			return
		case <-timer.C:
		}

		interval := s.model.Spinner.FPS
		if interval <= 0 {
			interval = 90 * time.Millisecond
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			fmt.Fprint(s.out, s.frame())
			select {
			case <-s.done:
				fmt.Fprint(s.out, "\r\033[2K")
				return
			case <-ticker.C:
				s.advance()
			}
		}
	}()
}

// stop blocks until the line is cleared. Safe to call more than once.
func (s *switchSpinner) stop() {
	s.once.Do(func() {
		close(s.done)
		<-s.stopped
	})
}

// startSwitchSpinner draws on stderr after delay until the returned func is
// called. Nothing is drawn unless stderr is a terminal.
func startSwitchSpinner(branch string, delay time.Duration) func() {
	if spinnerDisabled() || !term.IsTerminal(os.Stderr.Fd()) {
		return func() {}
	}
	s := newSwitchSpinner(os.Stderr, newPalette(lipgloss.NewRenderer(os.Stderr)), branch)
	s.start(delay)
	return s.stop
}
