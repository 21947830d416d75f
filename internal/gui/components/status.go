package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	countLabel := widget.NewLabel("Records: 0")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		countLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		countLabel:  countLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetRecordCount(count int) {
	sb.countLabel.SetText(fmt.Sprintf("Records: %d", count))
}
