// Package ebitenio runs the VM inside an ebiten window.
package ebitenio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/mnafees/chopper/v2/internal/config"
	"github.com/mnafees/chopper/v2/pkg/keypad"
	"github.com/mnafees/chopper/v2/pkg/screen"
)

// keys holds the ebiten key for every CHIP-8 key, built from keypad.Layout.
var keys [keypad.NumKeys]ebiten.Key

func init() {
	var found [keypad.NumKeys]bool
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		key, ok := keypad.Key(k.String())
		if !ok {
			continue
		}
		keys[key] = k
		found[key] = true
	}
	for key, ok := range found {
		if !ok {
			panic(fmt.Sprintf("no ebiten key for keypad key %q", keypad.Layout[key]))
		}
	}
}

// Game implements ebiten.Game for a CHIP-8 VM.
type Game struct {
	vm   *internal.C8VM
	opts config.Options

	canvas *ebiten.Image // reused 64x32 framebuffer image
	pixels []byte
	dirty  bool
}

// NewGame returns a game running vm with the given options.
func NewGame(vm *internal.C8VM, opts config.Options) *Game {
	g := &Game{
		vm:     vm,
		opts:   opts,
		pixels: make([]byte, screen.BufferSize),
		dirty:  true,
	}
	fb := vm.Pixels()
	screen.FillRGBA(g.pixels, &fb)
	return g
}

// Update polls the keypad and executes one frame worth of instructions.
// A VM fault ends the game loop with the fault as error.
func (g *Game) Update() error {
	for key, k := range keys {
		if err := g.vm.SetKey(uint8(key), ebiten.IsKeyPressed(k)); err != nil {
			return err
		}
	}

	for i := 0; i < g.opts.InstructionsPerFrame; i++ {
		if err := g.vm.Cycle(); err != nil {
			return err
		}
	}

	if g.vm.IsDrawFlagSet() {
		fb := g.vm.Pixels()
		screen.FillRGBA(g.pixels, &fb)
		g.vm.UnsetDrawFlag()
		g.dirty = true
	}
	return nil
}

// Draw renders the framebuffer.
func (g *Game) Draw(dst *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(internal.ScreenWidth, internal.ScreenHeight)
	}
	if g.dirty {
		g.canvas.WritePixels(g.pixels)
		g.dirty = false
	}
	dst.DrawImage(g.canvas, nil)
}

// Layout uses the native CHIP-8 resolution, ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return internal.ScreenWidth, internal.ScreenHeight
}

// Run opens the window and blocks until it is closed or the VM faults.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(internal.ScreenWidth*g.opts.Scale, internal.ScreenHeight*g.opts.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(config.FrameRate)
	return ebiten.RunGame(g)
}
