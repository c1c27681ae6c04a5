package app

import (
	"testing"

	"github.com/vovakirdan/mato/internal/core"
)

func TestLoopFirstFrameRenders(t *testing.T) {
	l := NewLoop(newTestMachine())

	render, quit := l.Frame(1000, nil)
	if !render || quit {
		t.Fatalf("Frame() = (%v, %v), expected (true, false)", render, quit)
	}

	render, _ = l.Frame(1016, nil)
	if render {
		t.Error("Idle start screen should not render again within one blink")
	}
}

func TestLoopStateChangeDefersRender(t *testing.T) {
	l := NewLoop(newTestMachine())
	l.Frame(0, nil)

	render, quit := l.Frame(100, []core.Event{core.KeyPress(core.KeyOther)})
	if render || quit {
		t.Fatalf("Changing frame = (%v, %v), expected (false, false)", render, quit)
	}
	if l.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", l.State())
	}

	render, _ = l.Frame(116, nil)
	if !render {
		t.Error("First frame of a new state must render")
	}
	if v := l.View(); v.State != StatePlaying || v.Elapsed != 16 {
		t.Errorf("View() = %v/%d, expected playing/16", v.State, v.Elapsed)
	}
}

func TestLoopRepaint(t *testing.T) {
	l := NewLoop(newTestMachine())
	l.Frame(0, nil)

	render, _ := l.Frame(10, []core.Event{core.RepaintRequested()})
	if !render {
		t.Error("Repaint request should force a render on the start screen")
	}
}

func TestLoopQuit(t *testing.T) {
	tests := []struct {
		name   string
		events []core.Event
	}{
		{"escape on start", []core.Event{core.KeyPress(core.KeyEscape)}},
		{"quit request", []core.Event{core.QuitRequested()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLoop(newTestMachine())
			l.Frame(0, nil)

			if render, quit := l.Frame(16, tc.events); render || !quit {
				t.Fatalf("Frame() = (%v, %v), expected (false, true)", render, quit)
			}
			if _, quit := l.Frame(32, nil); !quit {
				t.Error("Loop must stay stopped")
			}
		})
	}
}

func TestLoopFullGame(t *testing.T) {
	l := NewLoop(newTestMachine())
	now := 0
	l.Frame(now, nil)

	now += 16
	l.Frame(now, []core.Event{core.KeyPress(core.KeyOther)})

	// The worm heads right from (10, 7) and hits the wall on its ninth step.
	renders := 0
	for i := 0; i < 1000 && l.State() == StatePlaying; i++ {
		now += 16
		if render, _ := l.Frame(now, nil); render {
			renders++
		}
	}
	if l.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game_over", l.State())
	}
	if renders < 9 {
		t.Errorf("Expected a render per step, got %d", renders)
	}
	gameOverAt := now

	for i := 0; i < 2000 && l.State() == StateGameOver; i++ {
		now += 16
		l.Frame(now, nil)
	}
	if l.State() != StateStart {
		t.Fatalf("State() = %v, expected start", l.State())
	}
	if shown := now - gameOverAt; shown <= 15000 || shown > 15000+32 {
		t.Errorf("Game over shown for %dms, expected just over 15000", shown)
	}
}

func TestLoopTimeNeverRunsBackwards(t *testing.T) {
	l := NewLoop(newTestMachine())
	l.Frame(500, nil)
	l.Frame(400, nil)

	if v := l.View(); v.Elapsed != 0 {
		t.Errorf("Elapsed = %d, expected 0 for a clock step back", v.Elapsed)
	}
}
