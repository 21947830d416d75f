package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutEmpty(t *testing.T) {
	assert.Nil(t, Layout(nil, 620, 360))
}

func TestLayoutGeometry(t *testing.T) {
	bars := Layout([]int{50, 100, 25}, 620, 360)
	require.Len(t, bars, 3)

	// 620 wide canvas: 540 available, two gaps of 10, three bars.
	wantWidth := float32((620 - 2*40 - 2*10) / 3.0)
	baseline := float32(360 - 40)
	scale := float32(360 - 100)

	for i, bar := range bars {
		assert.InDelta(t, wantWidth, bar.Width, 0.01, "bar %d width", i)
		assert.Equal(t, SlotX(i, wantWidth), bar.X, "bar %d x", i)
		assert.InDelta(t, baseline, bar.Y+bar.Height, 0.01, "bar %d baseline", i)
	}

	// Heights scale against the maximum mark.
	assert.InDelta(t, scale/2, bars[0].Height, 0.01)
	assert.InDelta(t, scale, bars[1].Height, 0.01)
	assert.InDelta(t, scale/4, bars[2].Height, 0.01)
}

func TestLayoutSlotsDoNotOverlap(t *testing.T) {
	bars := Layout([]int{1, 2, 3, 4, 5, 6, 7, 8}, 620, 360)
	for i := 1; i < len(bars); i++ {
		assert.GreaterOrEqual(t, bars[i].X, bars[i-1].X+bars[i-1].Width+BarGap-0.01)
	}
}

func TestBarWidthFloors(t *testing.T) {
	// Narrow canvas still keeps the 100px drawing area guard.
	assert.GreaterOrEqual(t, BarWidth(4, 90), MinBarWidth)

	// Crowded canvas floors at the minimum bar width.
	assert.Equal(t, MinBarWidth, BarWidth(200, 620))

	// No bars: nothing to divide, returns the floor.
	assert.Equal(t, MinBarWidth, BarWidth(0, 620))
}

func TestLayoutZeroMaximum(t *testing.T) {
	bars := Layout([]int{0, 0}, 620, 360)
	require.Len(t, bars, 2)
	for _, bar := range bars {
		assert.Equal(t, MinBarHeight, bar.Height)
	}
}
