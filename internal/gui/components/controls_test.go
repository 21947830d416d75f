package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestSortControlsSpeedTracksSlider(t *testing.T) {
	test.NewApp()

	controls := NewSortControls(40)
	assert.Equal(t, 40.0, controls.Speed())

	controls.SpeedSlider.SetValue(70)
	assert.Equal(t, 70.0, controls.Speed())
}

func TestSortControlsSpeedReadableOffThread(t *testing.T) {
	test.NewApp()

	controls := NewSortControls(40)
	done := make(chan float64)
	go func() {
		done <- controls.Speed()
	}()
	assert.Equal(t, 40.0, <-done)
}
