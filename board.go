package refboard

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// CardID is a stable opaque card identifier. IDs are assigned from a
// monotonically increasing counter and never reused, so a CardID held across
// removals or reorderings can never silently resolve to a different card.
// The zero value is never a valid ID.
type CardID uint32

// Card is a transformable image displayed on the board.
type Card struct {
	// ID is the card's stable identifier, assigned by CreateCard.
	ID CardID

	// Image is the displayed content. A nil Image renders Color as a solid
	// rectangle instead. No board logic depends on its value.
	Image *ebiten.Image

	// Color tints the image, or fills the card when Image is nil.
	Color Color

	// X, Y is the absolute position of the card's top-left corner in pixels.
	X, Y int

	// Width, Height is the card size in pixels. Both are >= MinCardSize.
	Width, Height int

	// Rotation is the card's rotation about its center in radians.
	// The range is unconstrained; it is never normalized to [0, 2π).
	Rotation float64

	// Z is the stacking index. Across a board the Z values are always a
	// permutation of 0..N-1; higher draws on top.
	Z int
}

// Center returns the card's rotation center. Integer division truncates,
// matching the rotation math in the drag engine.
func (c *Card) Center() (x, y int) {
	return c.X + c.Width/2, c.Y + c.Height/2
}

// handleAngle is the angle, in the card's unrotated local frame, from the
// center to the corner where the transform handles sit. Derived from the
// current size so it stays correct after resizing.
func (c *Card) handleAngle() float64 {
	return math.Atan2(float64(c.Height), float64(c.Width))
}

// Board is the ordered collection of cards on the canvas. It knows nothing
// about input devices; the drag engine and the creation/removal collaborator
// are its only writers, and all writes arrive sequentially.
type Board struct {
	cards  []*Card
	nextID CardID

	// Reused buffer for z-ascending iteration, invalidated on any z change.
	sorted      []*Card
	sortedValid bool
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// CreateCard appends a card with the default size at the given position.
// New cards go on top: z is the card count at creation time. Never fails.
func (b *Board) CreateCard(img *ebiten.Image, x, y int) CardID {
	b.nextID++
	card := &Card{
		ID:     b.nextID,
		Image:  img,
		Color:  ColorWhite,
		X:      x,
		Y:      y,
		Width:  DefaultCardWidth,
		Height: DefaultCardHeight,
		Z:      len(b.cards),
	}
	b.cards = append(b.cards, card)
	b.sortedValid = false
	return card.ID
}

// CardByID returns the card with the given ID, or nil if no such card exists.
func (b *Board) CardByID(id CardID) *Card {
	for _, c := range b.cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// RemoveCard deletes the card and compacts the stacking order: every card
// above the removed one is demoted by 1, keeping the z values a dense
// permutation. Returns false if the ID does not resolve.
func (b *Board) RemoveCard(id CardID) bool {
	for i, c := range b.cards {
		if c.ID != id {
			continue
		}
		removedZ := c.Z
		copy(b.cards[i:], b.cards[i+1:])
		b.cards[len(b.cards)-1] = nil
		b.cards = b.cards[:len(b.cards)-1]
		for _, other := range b.cards {
			if other.Z > removedZ {
				other.Z--
			}
		}
		b.sortedValid = false
		return true
	}
	return false
}

// RaiseToFront moves the card to the top of the stack in one pass: every
// card stacked at or above it is demoted by 1, then the card itself is set
// to N-1. This both fills the gap the card leaves and compacts everything
// above it, so the z values stay a dense permutation. The card's current z
// is read fresh on every call. Returns false if the ID does not resolve.
func (b *Board) RaiseToFront(id CardID) bool {
	card := b.CardByID(id)
	if card == nil {
		return false
	}
	selectedZ := card.Z
	for _, c := range b.cards {
		if c.Z >= selectedZ {
			c.Z--
		}
	}
	card.Z = len(b.cards) - 1
	b.sortedValid = false
	return true
}

// ResetRotation sets the card's rotation to zero unconditionally.
// Returns false if the ID does not resolve.
func (b *Board) ResetRotation(id CardID) bool {
	card := b.CardByID(id)
	if card == nil {
		return false
	}
	card.Rotation = 0
	return true
}

// Len returns the number of cards on the board.
func (b *Board) Len() int {
	return len(b.cards)
}

// Cards returns the board's cards sorted ascending by z, so iterating in
// order draws back-to-front. The returned slice MUST NOT be mutated by the
// caller and is only valid until the next board mutation.
func (b *Board) Cards() []*Card {
	if !b.sortedValid {
		b.sorted = append(b.sorted[:0], b.cards...)
		sort.Slice(b.sorted, func(i, j int) bool {
			return b.sorted[i].Z < b.sorted[j].Z
		})
		b.sortedValid = true
	}
	return b.sorted
}
