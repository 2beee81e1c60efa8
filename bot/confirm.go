package bot

import (
	"sync"
	"time"
)

// DeleteConfirmTimeout is how long a delete prompt stays live. Expiry
// counts as cancel, never as confirm.
const DeleteConfirmTimeout = 30 * time.Second

type pendingConfirm struct {
	timer *time.Timer
}

// DeleteConfirmations tracks delete prompts awaiting a confirm or cancel
// click, keyed by guild and command name.
type DeleteConfirmations struct {
	timeout time.Duration
	mu      sync.Mutex
	pending map[string]*pendingConfirm
}

func NewDeleteConfirmations(timeout time.Duration) *DeleteConfirmations {
	return &DeleteConfirmations{
		timeout: timeout,
		pending: make(map[string]*pendingConfirm),
	}
}

// Begin arms a confirmation window for key. A repeated Begin for the same
// key replaces the earlier prompt, whose timer is stopped; its buttons then
// answer to the newer prompt. onExpire runs once if the window elapses
// without a Resolve.
func (c *DeleteConfirmations) Begin(key string, onExpire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.pending[key]; ok {
		old.timer.Stop()
	}

	p := &pendingConfirm{}
	p.timer = time.AfterFunc(c.timeout, func() {
		c.mu.Lock()
		// A stale timer that lost the Stop race must not expire the
		// prompt that replaced it.
		live := c.pending[key] == p
		if live {
			delete(c.pending, key)
		}
		c.mu.Unlock()
		if live {
			onExpire()
		}
	})
	c.pending[key] = p
}

// Resolve ends the confirmation window for key and reports whether it was
// still live. A false return means the prompt already expired or was
// replaced.
func (c *DeleteConfirmations) Resolve(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pending[key]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(c.pending, key)
	return true
}
