package spectate

import "sync"

// client is one connected spectator. Frames are queued on a bounded
// channel; when it is full the oldest frame is dropped so a slow reader
// never stalls the game loop.
type client struct {
	id       uint64
	send     chan []byte
	done     chan struct{}
	doneOnce sync.Once
}

func newClient(id uint64, buffer int) *client {
	if buffer < 1 {
		buffer = 16
	}
	return &client{
		id:   id,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

// enqueue offers msg to the client without blocking.
func (c *client) enqueue(msg []byte) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.send <- msg:
		return
	default:
	}

	// Full: drop the oldest and retry once.
	select {
	case <-c.send:
	default:
	}
	select {
	case c.send <- msg:
	default:
	}
}

func (c *client) close() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}
