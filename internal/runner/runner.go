// Package runner drives a virtual machine in real time.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// headlessCheckInterval is the number of instructions executed between
// context cancellation checks in headless mode.
const headlessCheckInterval = 1024

// Frontend is the user facing side of an emulation session.
type Frontend interface {
	// Keys returns a channel of raw input bytes. A closed channel
	// means that no further input is available.
	Keys() <-chan byte
	// Render draws the display.
	Render(fb *vm.Framebuffer) error
}

// Runner paces instruction execution, forwards input to the keypad and
// renders the display once per frame.
type Runner struct {
	logger    *log.Logger
	machine   *vm.VM
	hz        int
	frameRate int
	stepLimit int
	hold      time.Duration
	now       func() time.Time
}

// New creates a new runner for the machine.
func New(logger *log.Logger, machine *vm.VM, opts options.Program) *Runner {
	hz := opts.Hz
	if hz <= 0 {
		hz = options.DefaultInstructionsPerSecond
	}

	return &Runner{
		logger:    logger,
		machine:   machine,
		hz:        hz,
		frameRate: options.DefaultFrameRate,
		stepLimit: opts.Steps,
		hold:      terminal.DefaultHoldDuration,
		now:       time.Now,
	}
}

// session holds the state of a single Run invocation.
type session struct {
	frontend Frontend
	tracker  *terminal.KeyTracker
	budget   float64 // fractional instructions carried over to the next frame
	executed int
	shown    vm.Framebuffer
}

// Run executes the program until the user quits, the step limit is
// reached, an instruction faults or the context is canceled.
// Quitting and reaching the step limit are no errors.
func (r *Runner) Run(ctx context.Context, frontend Frontend) error {
	s := &session{
		frontend: frontend,
		tracker:  terminal.NewKeyTracker(r.hold),
		shown:    r.machine.Framebuffer(),
	}
	if err := frontend.Render(&s.shown); err != nil {
		return fmt.Errorf("rendering display: %w", err)
	}

	r.logger.Debug("Starting emulation",
		log.Int("hz", r.hz),
		log.Int("frame_rate", r.frameRate),
		log.Int("step_limit", r.stepLimit))

	ticker := time.NewTicker(time.Second / time.Duration(r.frameRate))
	defer ticker.Stop()

	keys := frontend.Keys()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case b, ok := <-keys:
			if !ok {
				keys = nil // input ended, keep running with the last key states
				continue
			}
			if terminal.IsQuit(b) {
				r.logger.Debug("Quit requested", log.Int("executed", s.executed))
				return nil
			}
			if key, ok := terminal.TranslateKey(b); ok {
				s.tracker.Press(key, r.now())
			}

		case <-ticker.C:
			done, err := r.runFrame(s)
			if err != nil || done {
				return err
			}
		}
	}
}

// runFrame executes the instructions of one frame and renders the display
// if it changed. It returns true once the step limit is reached.
func (r *Runner) runFrame(s *session) (bool, error) {
	r.machine.SetKeypad(s.tracker.Keypad(r.now()))

	s.budget += float64(r.hz) / float64(r.frameRate)
	steps := int(s.budget)
	s.budget -= float64(steps)

	for range steps {
		if r.limitReached(s) {
			break
		}
		if err := r.machine.Step(); err != nil {
			return false, fmt.Errorf("executing instruction: %w", err)
		}
		s.executed++
	}
	limitReached := r.limitReached(s)

	fb := r.machine.Framebuffer()
	if fb != s.shown {
		s.shown = fb
		if err := s.frontend.Render(&s.shown); err != nil {
			return false, fmt.Errorf("rendering display: %w", err)
		}
	}

	if limitReached {
		r.logger.Debug("Step limit reached", log.Int("executed", s.executed))
	}
	return limitReached, nil
}

func (r *Runner) limitReached(s *session) bool {
	return r.stepLimit > 0 && s.executed >= r.stepLimit
}

// RunHeadless executes the step limit of instructions without pacing and
// writes the final display as text. It does not read any input.
func (r *Runner) RunHeadless(ctx context.Context, w io.Writer) error {
	if r.stepLimit <= 0 {
		return fmt.Errorf("headless mode requires a positive step limit, got %d", r.stepLimit)
	}

	for i := range r.stepLimit {
		if i%headlessCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := r.machine.Step(); err != nil {
			return fmt.Errorf("executing instruction %d: %w", i, err)
		}
	}

	fb := r.machine.Framebuffer()
	if err := terminal.WriteText(w, &fb); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}
