package sdl

import (
	"fmt"
	"time"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/mnafees/chopper/v2/internal/config"
	"github.com/mnafees/chopper/v2/pkg/keypad"
	"github.com/mnafees/chopper/v2/pkg/screen"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// IO is the input/output abstraction layer for the VM
type IO struct {
	window  *sdl.Window
	surface *sdl.Surface
	beeper  *Beeper

	vm     *internal.C8VM
	logger *log.Logger
	opts   config.Options

	keys map[sdl.Scancode]uint8
}

// NewIO returns a new I/O instance for the SDL frontend
func NewIO(vm *internal.C8VM, logger *log.Logger, opts config.Options) *IO {
	return &IO{
		vm:     vm,
		logger: logger,
		opts:   opts,
		keys:   make(map[sdl.Scancode]uint8, len(keypad.Layout)),
	}
}

// SetupWindow initialises and sets up the main SDL window
func (io *IO) SetupWindow(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initialising SDL: %w", err)
	}

	scale := int32(io.opts.Scale)
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		internal.ScreenWidth*scale, internal.ScreenHeight*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	io.window = window
	io.surface, err = window.GetSurface()
	if err != nil {
		return fmt.Errorf("getting window surface: %w", err)
	}
	if err := io.surface.FillRect(nil, screen.RGB(screen.ScreenColor)); err != nil {
		return fmt.Errorf("clearing window surface: %w", err)
	}

	for key, name := range keypad.Layout {
		code := sdl.GetScancodeFromName(name)
		if code == sdl.SCANCODE_UNKNOWN {
			return fmt.Errorf("unknown key name %q", name)
		}
		io.keys[code] = uint8(key)
	}

	if !io.opts.Mute {
		io.beeper, err = NewBeeper()
		if err != nil {
			// the emulation works fine without sound
			io.logger.Error("Opening audio device failed", log.Err(err))
		}
	}
	return nil
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.beeper != nil {
		io.beeper.Close()
	}
	if io.window != nil {
		if err := io.window.Destroy(); err != nil {
			io.logger.Error("Destroying window failed", log.Err(err))
		}
	}
	sdl.Quit()
}

// Loop is the main application loop. Every frame it executes the configured
// number of instructions, redraws the screen when needed and updates the
// beeper. It returns when the window is closed or the VM faults.
func (io *IO) Loop() error {
	ticker := time.NewTicker(time.Second / config.FrameRate)
	defer ticker.Stop()

	for range ticker.C {
		if !io.handleEvents() {
			return nil
		}

		for i := 0; i < io.opts.InstructionsPerFrame; i++ {
			if err := io.vm.Cycle(); err != nil {
				return err
			}
		}

		if io.vm.IsDrawFlagSet() {
			if err := io.draw(); err != nil {
				return err
			}
		}

		if io.beeper != nil {
			if err := io.beeper.Update(io.vm.SoundTimer() > 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// handleEvents forwards keyboard events to the VM. It returns false once
// the window was closed.
func (io *IO) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyboardEvent:
			key, ok := io.keys[t.Keysym.Scancode]
			if !ok {
				continue
			}
			pressed := t.GetType() == sdl.KEYDOWN
			if err := io.vm.SetKey(key, pressed); err != nil {
				io.logger.Error("Setting key failed", log.Err(err))
			}
		case *sdl.QuitEvent:
			return false
		}
	}
	return true
}

// Draws the current framebuffer on screen
func (io *IO) draw() error {
	scale := int32(io.opts.Scale)
	spriteColor := screen.RGB(screen.SpriteColor)

	if err := io.surface.FillRect(nil, screen.RGB(screen.ScreenColor)); err != nil {
		return err
	}
	pixels := io.vm.Pixels()
	for h := int32(0); h < internal.ScreenHeight; h++ {
		for w := int32(0); w < internal.ScreenWidth; w++ {
			if !pixels[h*internal.ScreenWidth+w] {
				continue
			}
			rect := &sdl.Rect{X: w * scale, Y: h * scale, W: scale, H: scale}
			if err := io.surface.FillRect(rect, spriteColor); err != nil {
				return err
			}
		}
	}
	io.vm.UnsetDrawFlag()
	return io.window.UpdateSurface()
}
