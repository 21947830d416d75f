package components

import (
	"fmt"
	"sync"

	"gradeboard/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var tableHeaders = []string{"ID", "Name", "Roll", "Marks"}

// StudentTable lists the records; selecting any cell selects the whole
// row and reports the student to the selection handler.
type StudentTable struct {
	container *fyne.Container
	table     *widget.Table

	mu       sync.Mutex
	students []models.Student

	selectionHandler func(models.Student)
}

func NewStudentTable(width, height float32) *StudentTable {
	st := &StudentTable{}
	st.setupTable()
	st.container = container.NewGridWrap(fyne.NewSize(width, height), st.table)
	return st
}

func (st *StudentTable) setupTable() {
	st.table = widget.NewTable(
		func() (int, int) {
			st.mu.Lock()
			defer st.mu.Unlock()
			return len(st.students), len(tableHeaders)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("placeholder")
		},
		func(id widget.TableCellID, object fyne.CanvasObject) {
			label := object.(*widget.Label)
			label.SetText(st.cellText(id.Row, id.Col))
		},
	)

	st.table.ShowHeaderRow = true
	st.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	}
	st.table.UpdateHeader = func(id widget.TableCellID, object fyne.CanvasObject) {
		label := object.(*widget.Label)
		if id.Col >= 0 && id.Col < len(tableHeaders) {
			label.SetText(tableHeaders[id.Col])
		}
	}

	st.table.SetColumnWidth(0, 60)
	st.table.SetColumnWidth(1, 200)
	st.table.SetColumnWidth(2, 120)
	st.table.SetColumnWidth(3, 80)

	st.table.OnSelected = func(id widget.TableCellID) {
		st.mu.Lock()
		var student models.Student
		ok := id.Row >= 0 && id.Row < len(st.students)
		if ok {
			student = st.students[id.Row]
		}
		st.mu.Unlock()

		if ok && st.selectionHandler != nil {
			st.selectionHandler(student)
		}
	}
}

func (st *StudentTable) cellText(row, col int) string {
	st.mu.Lock()
	defer st.mu.Unlock()

	if row < 0 || row >= len(st.students) {
		return ""
	}
	student := st.students[row]
	switch col {
	case 0:
		return fmt.Sprintf("%d", student.ID)
	case 1:
		return student.Name
	case 2:
		return student.Roll
	case 3:
		return fmt.Sprintf("%d", student.Marks)
	}
	return ""
}

func (st *StudentTable) GetContainer() *fyne.Container {
	return st.container
}

func (st *StudentTable) SetSelectionHandler(handler func(models.Student)) {
	st.selectionHandler = handler
}

// SetStudents replaces the rows and redraws. Runs on the UI thread.
func (st *StudentTable) SetStudents(students []models.Student) {
	st.mu.Lock()
	st.students = make([]models.Student, len(students))
	copy(st.students, students)
	st.mu.Unlock()

	st.table.Refresh()
}

// ClearSelection drops the row selection.
func (st *StudentTable) ClearSelection() {
	st.table.UnselectAll()
}
