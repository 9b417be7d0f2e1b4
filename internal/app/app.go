package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/dot-pop/internal/field"
	"github.com/iburimskiy/dot-pop/internal/render"
	"github.com/iburimskiy/dot-pop/internal/shape"
	"github.com/iburimskiy/dot-pop/internal/sound"
)

var background = color.RGBA{R: 16, G: 18, B: 24, A: 255}

// App wires the point field to the window: the fixed-TPS tick, pointer
// samples, resize notifications, the reset chord and the reload banner.
// Every input event is applied at the top of Update, before the field
// advances, so the field never reads a half-applied sample.
type App struct {
	field  *field.Field
	canvas *render.Canvas
	banner *banner
	blip   *sound.Blip

	width, height    int
	layoutW, layoutH int

	shotPath string
	lastErr  error
}

func New(width, height int) *App {
	return &App{
		field:   newField(width, height),
		canvas:  render.NewCanvas(),
		banner:  newBanner("shape reset"),
		blip:    sound.NewBlip(),
		width:   width,
		height:  height,
		layoutW: width,
		layoutH: height,
	}
}

func newField(width, height int) *field.Field {
	f := field.New(float64(width), float64(height))
	shape.Populate(f)
	return f
}

func (a *App) Update() error {
	// Apply the resize observed by the last Layout call.
	if a.layoutW != a.width || a.layoutH != a.height {
		a.width, a.height = a.layoutW, a.layoutH
		a.field.Recenter(float64(a.width), float64(a.height))
	}

	mx, my := ebiten.CursorPosition()
	a.field.SetPointer(float64(mx), float64(my))

	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		path, err := askScreenshotPath()
		if err != nil {
			a.lastErr = err
		}
		a.shotPath = path
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	a.banner.update()
	a.field.Update()

	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.SetTarget(screen)
	a.canvas.Clear(background)
	a.field.Draw(a.canvas)
	a.banner.draw(screen)

	if a.shotPath != "" {
		if err := writeScreenshot(screen, a.shotPath); err != nil {
			a.lastErr = err
		} else {
			fmt.Println("saved screenshot to", a.shotPath)
		}
		a.shotPath = ""
	}

	if a.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+a.lastErr.Error(), 12, a.height-24)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.layoutW, a.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// reset replaces the whole field instead of mutating points in place, so a
// tick never iterates a half-rebuilt collection.
func (a *App) reset() {
	a.field = newField(a.width, a.height)
	a.banner.show()
	if err := a.blip.Play(); err != nil {
		a.lastErr = err
	}
}
