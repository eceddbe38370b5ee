package model

import (
	"testing"
	"time"
)

func TestClockDrainsOnlyWhileRunning(t *testing.T) {
	c := NewClock(time.Second)

	if got := c.TimeLeft(); got != time.Second {
		t.Fatalf("fresh clock reports %v", got)
	}

	c.Start()
	time.Sleep(20 * time.Millisecond)
	c.Stop()

	afterStop := c.TimeLeft()
	if afterStop >= time.Second {
		t.Fatalf("running clock did not drain: %v", afterStop)
	}
	if afterStop < time.Second-500*time.Millisecond {
		t.Fatalf("clock drained far too much: %v", afterStop)
	}

	time.Sleep(20 * time.Millisecond)
	if got := c.TimeLeft(); got != afterStop {
		t.Fatalf("stopped clock kept draining: %v vs %v", got, afterStop)
	}
}

func TestClockStartIsIdempotent(t *testing.T) {
	c := NewClock(time.Second)
	c.Start()
	c.Start()
	c.Stop()
	c.Stop()
	if got := c.TimeLeft(); got > time.Second {
		t.Fatalf("clock gained time: %v", got)
	}
}
