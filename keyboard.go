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


package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/term"

	"github.com/DiscoBiscuit99/DiscoGB/govern"
	"github.com/DiscoBiscuit99/DiscoGB/inspector"
	"github.com/DiscoBiscuit99/DiscoGB/logger"
)

// keyboard puts the terminal into cbreak mode and controls the runner with
// single key presses. the returned function restores the terminal.
func keyboard(ctx context.Context, cancel context.CancelFunc, r *govern.Runner, ins *inspector.Inspector, tracing *logger.Toggle, output io.Writer) (func(), error) {
	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("keyboard: %w", err)
	}

	go func() {
		b := make([]byte, 1)
		for {
			n, err := t.Read(b)
			if err != nil || ctx.Err() != nil {
				return
			}
			if n == 0 {
				continue
			}

			switch b[0] {
			case ' ':
				r.Step()
			case 'r', 'R':
				if r.Mode() == govern.Manual {
					r.SetMode(govern.Automatic)
				} else {
					r.SetMode(govern.Manual)
				}
			case 'p', 'P':
				fmt.Fprintln(output, ins.Registers())
			case 't', 'T':
				if tracing.Flip() {
					fmt.Fprintln(output, "central trace resumed")
				} else {
					fmt.Fprintln(output, "central trace paused")
				}
			case 'q', 'Q':
				cancel()
				return
			}
		}
	}()

	return func() {
		_ = t.Restore()
		_ = t.Close()
	}, nil
}
