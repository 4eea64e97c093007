package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/quailstudio/slingshock/config"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelItem is one row of the level select list.
type LevelItem struct {
	Name      string
	BestScore int
	Locked    bool
}

// MenuUI holds the ebitenui interface for the main menu.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlayLevel func(index int)
	OnQuit      func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds the title and level select menu.
func NewMenuUI(levels []LevelItem, onPlayLevel func(int), onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnPlayLevel: onPlayLevel,
		OnQuit:      onQuit,
	}

	mui.loadFonts()
	mui.buildUI(levels)

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   40,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (mui *MenuUI) buildUI(levels []LevelItem) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i, level := range levels {
		contentContainer.AddChild(mui.buildLevelButton(i, level))
	}

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(280, 36),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &mui.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	contentContainer.AddChild(quitButton)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buildLevelButton(index int, level LevelItem) *widget.Button {
	label := fmt.Sprintf("%d. %s", index+1, level.Name)
	if level.BestScore > 0 {
		label = fmt.Sprintf("%s  (best %d)", label, level.BestScore)
	}
	if level.Locked {
		label = fmt.Sprintf("%d. locked", index+1)
	}

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(280, 36),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Disabled: color.RGBA{120, 120, 120, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnPlayLevel != nil {
				mui.OnPlayLevel(index)
			}
		}),
	)
	if level.Locked {
		button.GetWidget().Disabled = true
	}
	return button
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
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

// Update advances the UI event loop.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
