package refboard

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// runTween drives a tween group to completion with a fixed timestep.
func runTween(t *testing.T, g *TweenGroup, steps int) {
	t.Helper()
	for i := 0; i < steps; i++ {
		g.Update(0.1)
		if g.Done {
			return
		}
	}
	t.Fatal("tween never finished")
}

func TestTweenCardPosition(t *testing.T) {
	b := NewBoard()
	id := b.CreateCard(nil, 0, 0)

	g := TweenCardPosition(b, id, 100, 60, 1, ease.Linear)
	runTween(t, g, 20)

	c := b.CardByID(id)
	if c.X != 100 || c.Y != 60 {
		t.Errorf("position = (%d, %d), want (100, 60)", c.X, c.Y)
	}
}

func TestTweenCardSizeClampsAtFloor(t *testing.T) {
	b := NewBoard()
	id := b.CreateCard(nil, 0, 0)

	g := TweenCardSize(b, id, 0, 0, 1, ease.Linear)
	runTween(t, g, 20)

	c := b.CardByID(id)
	if c.Width != MinCardSize || c.Height != MinCardSize {
		t.Errorf("size = (%d, %d), want (%d, %d)", c.Width, c.Height, MinCardSize, MinCardSize)
	}
}

func TestAnimateResetRotation(t *testing.T) {
	b := NewBoard()
	id := b.CreateCard(nil, 0, 0)
	b.CardByID(id).Rotation = 2.3

	g := AnimateResetRotation(b, id, 0.5)
	runTween(t, g, 20)

	assertNear(t, "rotation", b.CardByID(id).Rotation, 0)
}

func TestTweenStopsWhenCardRemoved(t *testing.T) {
	b := NewBoard()
	id := b.CreateCard(nil, 0, 0)

	g := TweenCardPosition(b, id, 500, 500, 1, ease.Linear)
	g.Update(0.1)
	b.RemoveCard(id)
	g.Update(0.1)

	if !g.Done {
		t.Error("tween kept running after its card was removed")
	}
}

func TestTweenMissingCardIsDone(t *testing.T) {
	b := NewBoard()
	g := TweenCardRotation(b, 42, 1, 1, ease.Linear)
	if !g.Done {
		t.Error("tween for a missing card should start done")
	}
	g.Update(0.1) // must not panic
}
