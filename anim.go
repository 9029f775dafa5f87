package refboard

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 values on a card simultaneously. Create one
// via the convenience constructors (TweenCardPosition, TweenCardSize,
// TweenCardRotation, AnimateResetRotation) and call Update(dt) each frame.
// If the target card is removed from the board, the group stops immediately.
//
// There is no global animation manager — callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(card *Card, values [2]float32)
	board  *Board
	card   CardID
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target card. If the card has been removed, Done is set and nothing is
// written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	card := g.board.CardByID(g.card)
	if card == nil {
		g.Done = true
		return
	}

	var values [2]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		v, finished := g.tweens[i].Update(dt)
		values[i] = v
		if !finished {
			allDone = false
		}
	}
	g.apply(card, values)
	g.Done = allDone
}

// TweenCardPosition animates the card's top-left corner to (toX, toY) over
// the given duration.
func TweenCardPosition(board *Board, id CardID, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	card := board.CardByID(id)
	if card == nil {
		return &TweenGroup{Done: true}
	}
	g := &TweenGroup{count: 2, board: board, card: id}
	g.tweens[0] = gween.New(float32(card.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(card.Y), float32(toY), duration, fn)
	g.apply = func(c *Card, v [2]float32) {
		c.X = int(math.Round(float64(v[0])))
		c.Y = int(math.Round(float64(v[1])))
	}
	return g
}

// TweenCardSize animates the card's size to (toW, toH) over the given
// duration. Values are clamped at MinCardSize per axis, same as an
// interactive resize.
func TweenCardSize(board *Board, id CardID, toW, toH int, duration float32, fn ease.TweenFunc) *TweenGroup {
	card := board.CardByID(id)
	if card == nil {
		return &TweenGroup{Done: true}
	}
	g := &TweenGroup{count: 2, board: board, card: id}
	g.tweens[0] = gween.New(float32(card.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(card.Height), float32(toH), duration, fn)
	g.apply = func(c *Card, v [2]float32) {
		c.Width = max(MinCardSize, int(math.Round(float64(v[0]))))
		c.Height = max(MinCardSize, int(math.Round(float64(v[1]))))
	}
	return g
}

// TweenCardRotation animates the card's rotation to the target angle in
// radians over the given duration.
func TweenCardRotation(board *Board, id CardID, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	card := board.CardByID(id)
	if card == nil {
		return &TweenGroup{Done: true}
	}
	g := &TweenGroup{count: 1, board: board, card: id}
	g.tweens[0] = gween.New(float32(card.Rotation), float32(to), duration, fn)
	g.apply = func(c *Card, v [2]float32) {
		c.Rotation = float64(v[0])
	}
	return g
}

// AnimateResetRotation eases the card's rotation back to zero instead of
// snapping it, for hosts that want a softer reset gesture. The board
// operation ResetRotation remains the instantaneous form.
func AnimateResetRotation(board *Board, id CardID, duration float32) *TweenGroup {
	return TweenCardRotation(board, id, 0, duration, ease.OutCubic)
}
