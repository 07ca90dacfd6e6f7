package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI holds the Restart and Quit buttons of the game over screen
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRestart func()
	OnQuit    func()

	buttonFace text.Face
}

// NewGameOverUI creates the game over buttons with ebitenui. The root
// container is transparent so the screen drawn underneath shows through.
func NewGameOverUI(onRestart, onQuit func()) (*GameOverUI, error) {
	gui := &GameOverUI{
		OnRestart: onRestart,
		OnQuit:    onQuit,
	}
	if err := gui.loadFonts(); err != nil {
		return nil, err
	}
	gui.buildUI()
	return gui, nil
}

func (gui *GameOverUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	gui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	return nil
}

func (gui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(60)),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	buttons.AddChild(gui.button("Restart", func() {
		if gui.OnRestart != nil {
			gui.OnRestart()
		}
	}))
	buttons.AddChild(gui.button("Quit", func() {
		if gui.OnQuit != nil {
			gui.OnQuit()
		}
	}))

	rootContainer.AddChild(buttons)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GameOverUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 40)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &gui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update calls the UI's Update method
func (gui *GameOverUI) Update() {
	gui.UI.Update()
}
