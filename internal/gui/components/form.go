package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StudentForm holds the entry fields and the record buttons on the
// left panel.
type StudentForm struct {
	container *fyne.Container

	NameEntry  *widget.Entry
	RollEntry  *widget.Entry
	MarksEntry *widget.Entry

	AddButton    *widget.Button
	UpdateButton *widget.Button
	DeleteButton *widget.Button

	addHandler    func()
	updateHandler func()
	deleteHandler func()
}

func NewStudentForm() *StudentForm {
	form := &StudentForm{}
	form.setupForm()
	return form
}

func (f *StudentForm) setupForm() {
	title := widget.NewLabelWithStyle("Student Record", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	f.NameEntry = widget.NewEntry()
	f.NameEntry.SetPlaceHolder("Name")
	f.RollEntry = widget.NewEntry()
	f.RollEntry.SetPlaceHolder("Roll No")
	f.MarksEntry = widget.NewEntry()
	f.MarksEntry.SetPlaceHolder("Marks (integer)")

	f.AddButton = widget.NewButton("Add", f.onAdd)
	f.AddButton.Importance = widget.HighImportance
	f.UpdateButton = widget.NewButton("Update", f.onUpdate)
	f.DeleteButton = widget.NewButton("Delete", f.onDelete)
	f.DeleteButton.Importance = widget.DangerImportance

	f.container = container.NewVBox(
		title,
		f.NameEntry,
		f.RollEntry,
		f.MarksEntry,
		f.AddButton,
		f.UpdateButton,
		f.DeleteButton,
	)
}

func (f *StudentForm) GetContainer() *fyne.Container {
	return f.container
}

func (f *StudentForm) SetAddHandler(handler func()) {
	f.addHandler = handler
}

func (f *StudentForm) SetUpdateHandler(handler func()) {
	f.updateHandler = handler
}

func (f *StudentForm) SetDeleteHandler(handler func()) {
	f.deleteHandler = handler
}

// Values returns the raw text of the three entries.
func (f *StudentForm) Values() (name, roll, marks string) {
	return f.NameEntry.Text, f.RollEntry.Text, f.MarksEntry.Text
}

// SetValues fills the entries, used when a table row is selected.
func (f *StudentForm) SetValues(name, roll, marks string) {
	f.NameEntry.SetText(name)
	f.RollEntry.SetText(roll)
	f.MarksEntry.SetText(marks)
}

// Clear empties the entries.
func (f *StudentForm) Clear() {
	f.SetValues("", "", "")
}

func (f *StudentForm) onAdd() {
	if f.addHandler != nil {
		f.addHandler()
	}
}

func (f *StudentForm) onUpdate() {
	if f.updateHandler != nil {
		f.updateHandler()
	}
}

func (f *StudentForm) onDelete() {
	if f.deleteHandler != nil {
		f.deleteHandler()
	}
}
