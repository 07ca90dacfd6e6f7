// Package display manages the game window: size, title and fullscreen mode.
package display

import "github.com/hajimehoshi/ebiten/v2"

// Screen is the window the game draws into.
type Screen interface {
	SetTitle(title string)
	SetWindowSize(width, height int)
	WindowSize() (int, int)
	SetFullscreen(fullscreen bool)
	IsFullscreen() bool
	// Restore leaves fullscreen mode.
	Restore()
	// Size is the logical screen size the game renders at.
	Size() (int, int)
}

// Ebiten is a Screen backed by the ebiten window.
type Ebiten struct {
	width  int
	height int
}

// NewEbiten returns the ebiten window with a fixed logical size.
func NewEbiten(width, height int) *Ebiten {
	return &Ebiten{width: width, height: height}
}

func (s *Ebiten) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (s *Ebiten) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (s *Ebiten) WindowSize() (int, int) {
	return ebiten.WindowSize()
}

func (s *Ebiten) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

func (s *Ebiten) IsFullscreen() bool {
	return ebiten.IsFullscreen()
}

func (s *Ebiten) Restore() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
	}
}

func (s *Ebiten) Size() (int, int) {
	return s.width, s.height
}
