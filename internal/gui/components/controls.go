package components

import (
	"math"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SortControls holds the speed slider and the sort buttons. The
// slider position is mirrored into an atomic so the animation worker
// can sample it without touching the widget off the UI thread.
type SortControls struct {
	container *fyne.Container

	SpeedSlider     *widget.Slider
	InsertionButton *widget.Button
	SelectionButton *widget.Button
	StopButton      *widget.Button

	speedBits atomic.Uint64

	insertionHandler func()
	selectionHandler func()
	stopHandler      func()
}

func NewSortControls(initialSpeed float64) *SortControls {
	controls := &SortControls{}
	controls.setupControls(initialSpeed)
	return controls
}

func (c *SortControls) setupControls(initialSpeed float64) {
	title := widget.NewLabelWithStyle("Sorting Visualizer", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	c.speedBits.Store(math.Float64bits(initialSpeed))
	c.SpeedSlider = widget.NewSlider(1, 100)
	c.SpeedSlider.OnChanged = func(value float64) {
		c.speedBits.Store(math.Float64bits(value))
	}
	c.SpeedSlider.SetValue(initialSpeed)

	c.InsertionButton = widget.NewButton("Insertion Sort", c.onInsertion)
	c.SelectionButton = widget.NewButton("Selection Sort", c.onSelection)
	c.StopButton = widget.NewButton("Stop Sorting", c.onStop)
	c.StopButton.Importance = widget.DangerImportance

	c.container = container.NewVBox(
		title,
		widget.NewLabel("Speed"),
		c.SpeedSlider,
		c.InsertionButton,
		c.SelectionButton,
		c.StopButton,
	)
}

func (c *SortControls) GetContainer() *fyne.Container {
	return c.container
}

func (c *SortControls) SetInsertionHandler(handler func()) {
	c.insertionHandler = handler
}

func (c *SortControls) SetSelectionHandler(handler func()) {
	c.selectionHandler = handler
}

func (c *SortControls) SetStopHandler(handler func()) {
	c.stopHandler = handler
}

// Speed returns the slider position, 1..100. Safe from any goroutine.
func (c *SortControls) Speed() float64 {
	return math.Float64frombits(c.speedBits.Load())
}

func (c *SortControls) onInsertion() {
	if c.insertionHandler != nil {
		c.insertionHandler()
	}
}

func (c *SortControls) onSelection() {
	if c.selectionHandler != nil {
		c.selectionHandler()
	}
}

func (c *SortControls) onStop() {
	if c.stopHandler != nil {
		c.stopHandler()
	}
}
