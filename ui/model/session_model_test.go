package model

import (
	"testing"
	"time"
)

func TestSessionModel_BasicLifecycle(t *testing.T) {
	m := NewSessionModel()
	m.SetLimit(30 * time.Second)
	base := time.Unix(0, 0)

	// Start at t0 and run for 5s.
	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	elapsed, limit := m.Values()
	if elapsed != 5*time.Second || limit != 30*time.Second {
		t.Fatalf("expected 5s of 30s; got elapsed=%v limit=%v", elapsed, limit)
	}

	// Stop at 6s; the last value stays visible while idle.
	m.OnTick(false, base.Add(6*time.Second))
	m.OnTick(false, base.Add(9*time.Second))
	elapsed, _ = m.Values()
	if elapsed != 6*time.Second {
		t.Fatalf("after stop expected persisted 6s; got %v", elapsed)
	}

	// A new session restarts the clock.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(12*time.Second))
	elapsed, _ = m.Values()
	if elapsed != 2*time.Second {
		t.Fatalf("second session expected 2s, got %v", elapsed)
	}
}

func TestSessionModel_ClampsToLimit(t *testing.T) {
	m := NewSessionModel()
	m.SetLimit(3 * time.Second)
	base := time.Unix(0, 0)
	m.OnTick(true, base)
	// assembly runs past the limit while the session is still busy
	m.OnTick(true, base.Add(7*time.Second))
	if elapsed, _ := m.Values(); elapsed != 3*time.Second {
		t.Fatalf("expected clamp at 3s, got %v", elapsed)
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.SetLimit(time.Second)
	m.OnTick(true, time.Now())
	if e, l := m.Values(); e != 0 || l != 0 {
		t.Fatalf("nil model should report zeros, got %v %v", e, l)
	}
}
