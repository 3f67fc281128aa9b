// This file is part of DiscoGB.
//
// DiscoGB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DiscoGB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DiscoGB.  If not, see <https://www.gnu.org/licenses/>.

package govern

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DiscoBiscuit99/DiscoGB/hardware/preferences"
	"github.com/DiscoBiscuit99/DiscoGB/logger"
	"github.com/retroenv/retrogolib/set"
)

// Halted is returned by Run() when the number of steps set by the
// run.maxsteps preference has been reached.
var Halted = errors.New("govern: halted")

// Machine is a minimal abstraction of the emulated machine. Exists mainly to
// avoid a circular import to the hardware package.
//
// The only likely implementation of this interface is the hardware.Machine
// type.
type Machine interface {
	Step() error
	PC() uint16
}

// Runner steps the Machine in a loop. Only one goroutine should call Run() but
// all other functions are safe to call from any goroutine.
type Runner struct {
	m     Machine
	prefs *preferences.Preferences

	state atomic.Int32
	mode  atomic.Int32
	steps atomic.Uint64

	// requests from other goroutines. the channels are buffered and requests
	// are dropped if there is already a request pending
	stepReq chan struct{}
	wake    chan struct{}

	crit        sync.Mutex
	breakpoints set.Set[uint16]
}

// NewRunner is the preferred method of initialisation for the Runner type. The
// initial mode is taken from the run.mode preference.
func NewRunner(m Machine, p *preferences.Preferences) *Runner {
	r := &Runner{
		m:           m,
		prefs:       p,
		stepReq:     make(chan struct{}, 1),
		wake:        make(chan struct{}, 1),
		breakpoints: set.New[uint16](),
	}

	if p.Automatic() {
		r.mode.Store(int32(Automatic))
	}

	return r
}

func request(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// State returns the current state of the Runner.
func (r *Runner) State() State {
	return State(r.state.Load())
}

// Mode returns the current mode of the Runner.
func (r *Runner) Mode() Mode {
	return Mode(r.mode.Load())
}

// SetMode changes how the Runner steps the Machine. Takes effect immediately,
// even if the Runner is waiting between steps.
func (r *Runner) SetMode(mode Mode) {
	r.mode.Store(int32(mode))
	request(r.wake)
}

// Step requests a single step of the Machine. The request is ignored unless
// the Runner is in Manual mode.
func (r *Runner) Step() {
	request(r.stepReq)
}

// Steps returns the number of steps taken since the Runner was created.
func (r *Runner) Steps() uint64 {
	return r.steps.Load()
}

// AddBreakpoint causes the Runner to switch to Manual mode when the PC
// reaches the address in Automatic mode.
func (r *Runner) AddBreakpoint(address uint16) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.breakpoints.Add(address)
}

// ClearBreakpoints removes all breakpoints.
func (r *Runner) ClearBreakpoints() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.breakpoints = set.New[uint16]()
}

func (r *Runner) isBreakpoint(address uint16) bool {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.breakpoints.Contains(address)
}

// step the machine once and count the step.
func (r *Runner) step() error {
	err := r.m.Step()
	if err != nil {
		return fmt.Errorf("govern: %w", err)
	}

	n := r.steps.Add(1)
	if limit := r.prefs.MaxSteps.Get().(int); limit > 0 && n >= uint64(limit) {
		return Halted
	}

	return nil
}

// Run the Machine until the context is cancelled, the step limit is reached
// or the Machine returns an error. A Runner can only be run once.
//
// Returns nil if the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	if !r.state.CompareAndSwap(int32(Initialising), int32(Paused)) {
		return fmt.Errorf("govern: runner is %s", r.State())
	}
	defer r.state.Store(int32(Ending))

	for {
		if r.Mode() == Manual {
			r.state.Store(int32(Paused))

			select {
			case <-ctx.Done():
				return nil
			case <-r.wake:
			case <-r.stepReq:
				r.state.Store(int32(Stepping))
				err := r.step()
				if err != nil {
					return err
				}
			}

			continue
		}

		r.state.Store(int32(Running))

		// step requests are meaningless in automatic mode
		select {
		case <-ctx.Done():
			return nil
		case <-r.stepReq:
		default:
		}

		err := r.step()
		if err != nil {
			return err
		}

		if pc := r.m.PC(); r.isBreakpoint(pc) {
			logger.Logf(logger.Allow, "govern", "breakpoint at %#04x", pc)
			r.mode.Store(int32(Manual))
			continue
		}

		if interval := r.prefs.Interval.Get().(int); interval > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-r.wake:
			case <-time.After(time.Duration(interval) * time.Millisecond):
			}
		}
	}
}
