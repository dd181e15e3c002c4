package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gosketch/pkg/config"
	"github.com/philipparndt/gosketch/pkg/viewer"
	"github.com/philipparndt/gosketch/version"
)

type App struct {
	window      fyne.Window
	sketch      *viewer.SketchCanvas
	modeSelect  *widget.RadioGroup
	statusLabel *widget.Label
	errorLabel  *widget.Label
}

var modeNames = []string{"Segments", "Polygons"}

func main() {
	configPath := flag.String("config", "gosketch.toml", "path to the TOML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()

	a := app.New()
	w := a.NewWindow(fmt.Sprintf("GoSketch %s", version.GetVersion()))

	appInstance := &App{
		window: w,
		sketch: viewer.NewSketchCanvas(cfg, logger),
	}
	appInstance.build()

	w.Canvas().SetOnTypedKey(appInstance.sketch.TypedKey)
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
}

func (a *App) build() {
	a.statusLabel = widget.NewLabel("")
	a.errorLabel = widget.NewLabel("")
	a.errorLabel.Importance = widget.DangerImportance

	a.modeSelect = widget.NewRadioGroup(modeNames, func(selected string) {
		mode := viewer.ModeSegments
		if selected == modeNames[1] {
			mode = viewer.ModePolygons
		}
		if mode != a.sketch.Mode() {
			a.sketch.SetMode(mode)
		}
	})
	a.modeSelect.Horizontal = true
	a.modeSelect.Required = true
	a.modeSelect.SetSelected(modeNames[0])

	clearButton := widget.NewButton("Clear", func() {
		dialog.ShowConfirm("Clear sketch", "Remove all segments and polygons?", func(ok bool) {
			if ok {
				a.sketch.Clear()
			}
		}, a.window)
	})

	helpButton := widget.NewButton("Keys", func() {
		dialog.ShowInformation("Keys", `Drag: draw or move a segment
Ctrl+Drag: always draw a new segment
Delete: remove selected or hovered segment
Tab: switch mode | Esc: discard open chain
P / U: pin / unpin polygon under cursor
Q / E: rotate pinned polygon`, a.window)
	})

	a.sketch.SetOnChange(a.update)
	a.update()

	toolbar := container.NewHBox(a.modeSelect, clearButton, helpButton)
	status := container.NewVBox(a.statusLabel, a.errorLabel)
	a.window.SetContent(container.NewBorder(toolbar, status, nil, nil, a.sketch))
}

// update syncs the labels and mode selector with the canvas
func (a *App) update() {
	a.statusLabel.SetText(a.sketch.Status())

	if err := a.sketch.LastError(); err != nil {
		a.errorLabel.SetText(err.Error())
	} else {
		a.errorLabel.SetText("")
	}

	selected := modeNames[0]
	if a.sketch.Mode() == viewer.ModePolygons {
		selected = modeNames[1]
	}
	if a.modeSelect.Selected != selected {
		a.modeSelect.SetSelected(selected)
	}
}
