package visualizer

import (
	"fmt"
	"image/color"
	"sync"

	"gradeboard/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Palette matching the original dark theme of the visualizer.
var (
	ColorBackground = color.RGBA{R: 0x1f, G: 0x1f, B: 0x1f, A: 0xff}
	ColorBase       = color.RGBA{R: 0x2b, G: 0x7a, B: 0x78, A: 0xff}
	ColorKey        = color.RGBA{R: 0xfd, G: 0xd8, B: 0x35, A: 0xff}
	ColorCompare    = color.RGBA{R: 0xcc, G: 0x24, B: 0x1d, A: 0xff}
	ColorPass       = color.RGBA{R: 0x66, G: 0xbb, B: 0x6a, A: 0xff}
	ColorDone       = color.RGBA{R: 0x38, G: 0x8e, B: 0x3c, A: 0xff}

	colorLabel = color.White
)

// Board renders one bar per student on a dark canvas: the rectangle
// scaled to the marks, the marks value above it and the student name
// below it. Slot k is always the k-th position left to right; swapping
// moves the canvas objects between slots.
//
// All mutating methods must run on the Fyne UI thread (inside fyne.Do
// when called from a worker). Students may be read from any goroutine.
type Board struct {
	mu sync.Mutex

	root       *fyne.Container
	background *canvas.Rectangle

	width, height float32
	barWidth      float32

	students    []models.Student
	bars        []*canvas.Rectangle
	valueLabels []*canvas.Text
	nameLabels  []*canvas.Text
}

func NewBoard(width, height float32) *Board {
	background := canvas.NewRectangle(ColorBackground)
	background.Resize(fyne.NewSize(width, height))

	return &Board{
		root:       container.NewWithoutLayout(background),
		background: background,
		width:      width,
		height:     height,
	}
}

// Container returns the canvas area at its fixed size.
func (b *Board) Container() fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(b.width, b.height), b.root)
}

// Load rebuilds the bars from the given records, discarding any
// previous canvas objects and highlights.
func (b *Board) Load(students []models.Student) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.students = make([]models.Student, len(students))
	copy(b.students, students)

	marks := make([]int, len(students))
	for i, student := range students {
		marks[i] = student.Marks
	}
	rects := Layout(marks, b.width, b.height)
	b.barWidth = BarWidth(len(students), b.width)

	b.bars = make([]*canvas.Rectangle, len(students))
	b.valueLabels = make([]*canvas.Text, len(students))
	b.nameLabels = make([]*canvas.Text, len(students))
	b.root.Objects = []fyne.CanvasObject{b.background}

	baseline := b.height - BaselineOffset
	for i, student := range students {
		rect := rects[i]

		bar := canvas.NewRectangle(ColorBase)
		bar.Move(fyne.NewPos(rect.X, rect.Y))
		bar.Resize(fyne.NewSize(rect.Width, rect.Height))

		value := canvas.NewText(fmt.Sprintf("%d", student.Marks), colorLabel)
		value.TextSize = 10
		value.Alignment = fyne.TextAlignCenter
		value.Move(fyne.NewPos(rect.X, rect.Y-18))
		value.Resize(fyne.NewSize(rect.Width, 14))

		name := canvas.NewText(student.Name, colorLabel)
		name.TextSize = 8
		name.Alignment = fyne.TextAlignCenter
		name.Move(fyne.NewPos(rect.X, baseline+4))
		name.Resize(fyne.NewSize(rect.Width, 12))

		b.bars[i] = bar
		b.valueLabels[i] = value
		b.nameLabels[i] = name
		b.root.Objects = append(b.root.Objects, bar, value, name)
	}

	b.root.Refresh()
}

// Count returns the number of bars on the board.
func (b *Board) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bars)
}

// Students returns the records in their current on-screen order.
func (b *Board) Students() []models.Student {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Student, len(b.students))
	copy(out, b.students)
	return out
}

// SetFill recolors the bar in slot i.
func (b *Board) SetFill(i int, fill color.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.bars) {
		return
	}
	b.bars[i].FillColor = fill
	b.bars[i].Refresh()
}

// MoveBarBy shifts the bar in slot i and its labels by (dx, dy).
func (b *Board) MoveBarBy(i int, dx, dy float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.bars) {
		return
	}
	for _, obj := range []fyne.CanvasObject{b.bars[i], b.valueLabels[i], b.nameLabels[i]} {
		obj.Move(obj.Position().AddXY(dx, dy))
	}
	canvas.Refresh(b.root)
}

// SlotDistance returns the horizontal distance from slot i to slot j.
func (b *Board) SlotDistance(i, j int) float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return float32(j-i) * (b.barWidth + BarGap)
}

// SwapSlots exchanges the bookkeeping of slots i and j after their
// objects have been moved into each other's positions.
func (b *Board) SwapSlots(i, j int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || j < 0 || i >= len(b.bars) || j >= len(b.bars) {
		return
	}
	b.bars[i], b.bars[j] = b.bars[j], b.bars[i]
	b.valueLabels[i], b.valueLabels[j] = b.valueLabels[j], b.valueLabels[i]
	b.nameLabels[i], b.nameLabels[j] = b.nameLabels[j], b.nameLabels[i]
	b.students[i], b.students[j] = b.students[j], b.students[i]
}
