// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package terminal

// Event is a decoded key press.
type Event int

const (
	EventNone Event = iota
	EventSpace
	EventUp
	EventDown
	EventQuit
)

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// decoder turns the raw rune stream of a tty into events. Arrow keys arrive
// as ESC [ A / ESC [ B; a lone ESC (nothing buffered after it) quits.
type decoder struct {
	state int
}

const (
	stateGround = iota
	stateEsc
	stateCSI
)

// Feed consumes r. buffered reports whether more input is already waiting,
// which tells a lone ESC apart from the start of an escape sequence.
func (d *decoder) Feed(r rune, buffered bool) Event {
	switch d.state {
	case stateEsc:
		if r == '[' || r == 'O' {
			d.state = stateCSI
			return EventNone
		}
		d.state = stateGround
		return d.ground(r, buffered)
	case stateCSI:
		// parameters and intermediates until the final byte
		if r >= 0x40 && r <= 0x7e {
			d.state = stateGround
			switch r {
			case 'A':
				return EventUp
			case 'B':
				return EventDown
			}
		}
		return EventNone
	default:
		return d.ground(r, buffered)
	}
}

func (d *decoder) ground(r rune, buffered bool) Event {
	switch r {
	case keyEsc:
		if !buffered {
			return EventQuit
		}
		d.state = stateEsc
		return EventNone
	case ' ':
		return EventSpace
	case 'q', 'Q', keyCtrlC:
		return EventQuit
	case 'k':
		return EventUp
	case 'j':
		return EventDown
	}
	return EventNone
}
