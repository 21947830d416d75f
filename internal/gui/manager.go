package gui

import (
	"sync"

	"gradeboard/internal/gui/components"
	"gradeboard/internal/logger"
	"gradeboard/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const (
	BoardWidth  float32 = 620
	BoardHeight float32 = 360
	TableHeight float32 = 200
)

// Manager owns the window's widgets and exposes handler setters for
// the application layer plus thread-safe update methods.
type Manager struct {
	window fyne.Window
	logger logger.Logger

	mu         sync.Mutex
	isShutdown bool

	form     *components.StudentForm
	table    *components.StudentTable
	controls *components.SortControls
	status   *components.StatusBar
	board    fyne.CanvasObject
}

func NewManager(window fyne.Window, board fyne.CanvasObject, initialSpeed float64, log logger.Logger) *Manager {
	manager := &Manager{
		window:   window,
		logger:   log,
		form:     components.NewStudentForm(),
		table:    components.NewStudentTable(BoardWidth, TableHeight),
		controls: components.NewSortControls(initialSpeed),
		status:   components.NewStatusBar(),
		board:    board,
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"board_width":  BoardWidth,
		"board_height": BoardHeight,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	leftPanel := container.NewVBox(
		m.form.GetContainer(),
		m.controls.GetContainer(),
	)

	rightPanel := container.NewVBox(
		m.table.GetContainer(),
		m.board,
	)

	content := container.NewBorder(
		nil, nil,
		leftPanel,
		nil,
		rightPanel,
	)

	return container.NewBorder(
		nil,
		m.status.GetContainer(),
		nil, nil,
		content,
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetAddHandler(handler func())       { m.form.SetAddHandler(handler) }
func (m *Manager) SetUpdateHandler(handler func())    { m.form.SetUpdateHandler(handler) }
func (m *Manager) SetDeleteHandler(handler func())    { m.form.SetDeleteHandler(handler) }
func (m *Manager) SetInsertionHandler(handler func()) { m.controls.SetInsertionHandler(handler) }
func (m *Manager) SetSelectionHandler(handler func()) { m.controls.SetSelectionHandler(handler) }
func (m *Manager) SetStopHandler(handler func())      { m.controls.SetStopHandler(handler) }

func (m *Manager) SetRowSelectionHandler(handler func(models.Student)) {
	m.table.SetSelectionHandler(func(student models.Student) {
		m.logger.Debug("GUIManager", "row selected", map[string]interface{}{
			"id":   student.ID,
			"roll": student.Roll,
		})
		handler(student)
	})
}

// FormValues returns the raw entry texts.
func (m *Manager) FormValues() (name, roll, marks string) {
	return m.form.Values()
}

// FillForm copies a record into the entries.
func (m *Manager) FillForm(name, roll, marks string) {
	fyne.Do(func() {
		m.form.SetValues(name, roll, marks)
	})
}

// ClearForm empties the entries and drops the table selection.
func (m *Manager) ClearForm() {
	fyne.Do(func() {
		m.form.Clear()
		m.table.ClearSelection()
	})
}

// Speed returns the live slider position for the animator.
func (m *Manager) Speed() float64 {
	return m.controls.Speed()
}

// SetStudents replaces the table rows and the record count.
func (m *Manager) SetStudents(students []models.Student) {
	fyne.Do(func() {
		m.table.SetStudents(students)
		m.status.SetRecordCount(len(students))
	})
}

// SetTableOrder updates only the rows, used while an animation
// reorders the snapshot without touching the database.
func (m *Manager) SetTableOrder(students []models.Student) {
	fyne.Do(func() {
		m.table.SetStudents(students)
	})
}

func (m *Manager) UpdateStatus(status string) {
	fyne.Do(func() {
		m.status.SetStatus(status)
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, m.window)
	})
}

func (m *Manager) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, m.window)
	})
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
