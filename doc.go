// Package refboard is an interactive 2D reference board for [Ebitengine].
//
// A board holds rectangular image cards that can be moved, resized, and
// rotated by direct mouse manipulation. The board keeps the stacking order
// dense: the z values of N cards are always a permutation of 0..N-1, and
// grabbing a card raises it to the front.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := refboard.NewScene()
//	scene.Board().CreateCard(nil, 0, 0)
//	refboard.Run(scene, refboard.RunConfig{
//		Title: "My Board", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly:
//
//	type Game struct{ scene *refboard.Scene }
//
//	func (g *Game) Update() error         { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Interaction model
//
// Each card exposes three grab targets: the card body (drag to move, raising
// the card to the front), a scale handle on the bottom-right corner (drag to
// resize, clamped at [MinCardSize] per axis), and a rotate handle on the
// top-right corner (drag to rotate about the card center; right-click to
// snap the rotation back to zero).
//
// Raw pointer input is normalized into a small event vocabulary ([Event])
// and funneled through a single FIFO queue drained inside [Scene.Update],
// so every mutation of the card store is sequential even though the host
// runtime is multi-threaded.
//
// # Key features
//
// Synthetic input injection ([Scene.InjectDrag] and friends), JSON-scripted
// interaction runs ([TestRunner]), PNG board exports ([Scene.Screenshot]),
// and card tweens (via [gween]) are included for automation and polish.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package refboard
