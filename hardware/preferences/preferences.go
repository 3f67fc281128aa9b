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

package preferences

import (
	"fmt"
	"math"
	"strings"

	"github.com/DiscoBiscuit99/DiscoGB/prefs"
)

// List of valid values for the run.mode preference.
const (
	ModeManual    = "manual"
	ModeAutomatic = "automatic"
)

// Preferences defines and collates all the preference values used by the
// machine and the run loop.
type Preferences struct {
	// pass every decoded instruction to a tracer
	Trace prefs.Bool

	// the stepping mode of the run loop when it starts. one of ModeManual or
	// ModeAutomatic
	Mode prefs.String

	// milliseconds to wait between steps when in automatic mode
	Interval prefs.Int

	// stop the run loop after this many steps. zero for no limit
	MaxSteps prefs.Int
}

// the key used for each preference on the command line stack
const (
	keyTrace    = "cpu.trace"
	keyMode     = "run.mode"
	keyInterval = "run.interval"
	keyMaxSteps = "run.maxsteps"
)

func (p *Preferences) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s :: %s\n", keyTrace, p.Trace.String()))
	s.WriteString(fmt.Sprintf("%s :: %s\n", keyMode, p.Mode.String()))
	s.WriteString(fmt.Sprintf("%s :: %s\n", keyInterval, p.Interval.String()))
	s.WriteString(fmt.Sprintf("%s :: %s", keyMaxSteps, p.MaxSteps.String()))
	return s.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Default values are overridden by any values in the current group of
// the command line stack. See prefs.PushCommandLineStack().
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Mode.SetOptions(ModeManual, ModeAutomatic)
	p.Interval.SetRange(0, 60000)
	p.MaxSteps.SetRange(0, math.MaxInt)

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	_, err = prefs.ApplyCommandLinePref(keyTrace, &p.Trace)
	if err != nil {
		return nil, err
	}
	_, err = prefs.ApplyCommandLinePref(keyMode, &p.Mode)
	if err != nil {
		return nil, err
	}
	_, err = prefs.ApplyCommandLinePref(keyInterval, &p.Interval)
	if err != nil {
		return nil, err
	}
	_, err = prefs.ApplyCommandLinePref(keyMaxSteps, &p.MaxSteps)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	for _, err := range []error{
		p.Trace.Set(false),
		p.Mode.Set(ModeManual),
		p.Interval.Set(0),
		p.MaxSteps.Set(0),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Automatic returns true if the run.mode preference is ModeAutomatic.
func (p *Preferences) Automatic() bool {
	return p.Mode.String() == ModeAutomatic
}
