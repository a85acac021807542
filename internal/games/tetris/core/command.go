package core

import "fmt"

// Command is a discrete player request.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	RotateCW
	RotateCCW
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case RotateCW:
		return "rotate-cw"
	case RotateCCW:
		return "rotate-ccw"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// ParseCommand converts a command name (or its one-letter shorthand
// l, r, c, a) into a Command.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "move-left", "l":
		return MoveLeft, nil
	case "move-right", "r":
		return MoveRight, nil
	case "rotate-cw", "c":
		return RotateCW, nil
	case "rotate-ccw", "a":
		return RotateCCW, nil
	}
	return 0, fmt.Errorf("core: unknown command %q", s)
}

// QueueCapacity is the number of commands that can wait for the next tick.
const QueueCapacity = 16

// commandQueue is a fixed-size FIFO ring.
type commandQueue struct {
	buf  [QueueCapacity]Command
	head int
	size int
}

func (q *commandQueue) push(c Command) bool {
	if q.size == QueueCapacity {
		return false
	}
	q.buf[(q.head+q.size)%QueueCapacity] = c
	q.size++
	return true
}

func (q *commandQueue) pop() (Command, bool) {
	if q.size == 0 {
		return 0, false
	}
	c := q.buf[q.head]
	q.head = (q.head + 1) % QueueCapacity
	q.size--
	return c, true
}

func (q *commandQueue) len() int {
	return q.size
}

func (q *commandQueue) reset() {
	q.head = 0
	q.size = 0
}
