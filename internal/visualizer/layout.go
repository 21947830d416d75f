package visualizer

// Geometry constants for the bar canvas. Bars sit on a baseline above
// the name labels; value labels float above each bar.
const (
	SidePadding    float32 = 40
	BarGap         float32 = 10
	MinBarWidth    float32 = 10
	BaselineOffset float32 = 40
	HeadroomOffset float32 = 100
	MinBarHeight   float32 = 10
)

// BarRect is the placed rectangle of one bar in canvas coordinates.
type BarRect struct {
	X, Y          float32
	Width, Height float32
}

// SlotX returns the left edge of slot i for the given bar width.
func SlotX(i int, barWidth float32) float32 {
	return SidePadding + float32(i)*(barWidth+BarGap)
}

// BarWidth computes the shared bar width for n bars on a canvas of the
// given width. At least 100px of drawing area and a minimum bar width
// are always kept, so crowded canvases overflow instead of vanishing.
func BarWidth(n int, canvasWidth float32) float32 {
	if n == 0 {
		return MinBarWidth
	}

	available := canvasWidth - 2*SidePadding
	if available < 100 {
		available = 100
	}

	width := (available - float32(n-1)*BarGap) / float32(n)
	if width < MinBarWidth {
		width = MinBarWidth
	}
	return width
}

// Layout places bars for the given marks on a canvas of the given
// size. Heights scale against the maximum value; a zero maximum still
// produces visible stubs.
func Layout(marks []int, canvasWidth, canvasHeight float32) []BarRect {
	n := len(marks)
	if n == 0 {
		return nil
	}

	max := 0
	for _, m := range marks {
		if m > max {
			max = m
		}
	}

	barWidth := BarWidth(n, canvasWidth)
	baseline := canvasHeight - BaselineOffset
	scale := canvasHeight - HeadroomOffset

	bars := make([]BarRect, n)
	for i, m := range marks {
		height := MinBarHeight
		if max > 0 {
			height = float32(m) / float32(max) * scale
		}
		bars[i] = BarRect{
			X:      SlotX(i, barWidth),
			Y:      baseline - height,
			Width:  barWidth,
			Height: height,
		}
	}
	return bars
}
