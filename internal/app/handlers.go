package app

import (
	"errors"
	"fmt"
	"sync"

	"gradeboard/internal/gui"
	"gradeboard/internal/logger"
	"gradeboard/internal/models"
	"gradeboard/internal/sorting"
	"gradeboard/internal/storage"
	"gradeboard/internal/visualizer"

	"fyne.io/fyne/v2"
)

// Handlers connects the GUI events to the store and the animator.
// Database work runs off the UI thread; results come back via the
// manager's fyne.Do wrapped update methods.
type Handlers struct {
	store      *storage.Store
	guiManager *gui.Manager
	board      *visualizer.Board
	animator   *visualizer.Animator
	logger     logger.Logger

	mu         sync.Mutex
	selectedID uint
}

func NewHandlers(store *storage.Store, gm *gui.Manager, board *visualizer.Board, animator *visualizer.Animator, log logger.Logger) *Handlers {
	return &Handlers{
		store:      store,
		guiManager: gm,
		board:      board,
		animator:   animator,
		logger:     log,
	}
}

// Bind wires every GUI event and animator callback.
func (h *Handlers) Bind() {
	h.guiManager.SetAddHandler(h.HandleAdd)
	h.guiManager.SetUpdateHandler(h.HandleUpdate)
	h.guiManager.SetDeleteHandler(h.HandleDelete)
	h.guiManager.SetRowSelectionHandler(h.HandleRowSelection)
	h.guiManager.SetInsertionHandler(func() { h.HandleSort("Insertion", sorting.InsertionTrace) })
	h.guiManager.SetSelectionHandler(func() { h.HandleSort("Selection", sorting.SelectionTrace) })
	h.guiManager.SetStopHandler(h.HandleStop)

	h.animator.SetReorderHandler(h.guiManager.SetTableOrder)
	h.animator.SetFinishedHandler(h.handleSortFinished)
}

func (h *Handlers) HandleAdd() {
	student, err := models.NewStudent(h.guiManager.FormValues())
	if err != nil {
		h.guiManager.ShowError("Invalid Input", err)
		return
	}

	go func() {
		if err := h.store.CreateStudent(&student); err != nil {
			h.showStoreError("Add Failed", err)
			return
		}

		h.logger.Info("Handlers", "student added", map[string]interface{}{
			"id":   student.ID,
			"roll": student.Roll,
		})
		h.clearSelection()
		h.RefreshAll()
	}()
}

func (h *Handlers) HandleUpdate() {
	id := h.currentSelection()
	if id == 0 {
		h.guiManager.ShowInfo("Select", "Select a student to update.")
		return
	}

	student, err := models.NewStudent(h.guiManager.FormValues())
	if err != nil {
		h.guiManager.ShowError("Invalid Input", err)
		return
	}
	student.ID = id

	go func() {
		if err := h.store.UpdateStudent(student); err != nil {
			h.showStoreError("Update Failed", err)
			return
		}

		h.logger.Info("Handlers", "student updated", map[string]interface{}{
			"id": student.ID,
		})
		h.clearSelection()
		h.RefreshAll()
	}()
}

func (h *Handlers) HandleDelete() {
	id := h.currentSelection()
	if id == 0 {
		h.guiManager.ShowInfo("Select", "Select a student to delete.")
		return
	}

	h.guiManager.ShowConfirm("Confirm", "Delete selected student?", func(confirmed bool) {
		if !confirmed {
			return
		}

		go func() {
			if err := h.store.DeleteStudent(id); err != nil {
				h.showStoreError("Delete Failed", err)
				return
			}

			h.logger.Info("Handlers", "student deleted", map[string]interface{}{
				"id": id,
			})
			h.clearSelection()
			h.RefreshAll()
		}()
	})
}

func (h *Handlers) HandleRowSelection(student models.Student) {
	h.mu.Lock()
	h.selectedID = student.ID
	h.mu.Unlock()

	h.guiManager.FillForm(student.Name, student.Roll, fmt.Sprintf("%d", student.Marks))
}

// HandleSort reserves the animation slot, reloads the records,
// rebuilds the bars and plays the trace produced by the given
// algorithm. The reservation happens synchronously so a second click
// can never interleave with a run that is still setting up.
func (h *Handlers) HandleSort(algorithm string, tracer func([]int) sorting.Trace) {
	if !h.animator.TryAcquire() {
		h.guiManager.ShowInfo("Sorting", "Already running.")
		return
	}

	go func() {
		students, err := h.store.ListStudents()
		if err != nil {
			h.animator.Release()
			h.guiManager.ShowError("Load Failed", err)
			return
		}
		if len(students) == 0 {
			h.animator.Release()
			h.guiManager.ShowInfo("Empty", "No data.")
			return
		}

		marks := make([]int, len(students))
		for i, student := range students {
			marks[i] = student.Marks
		}

		fyne.DoAndWait(func() {
			h.board.Load(students)
		})
		h.guiManager.SetStudents(students)
		h.guiManager.UpdateStatus(fmt.Sprintf("%s sort running...", algorithm))

		h.animator.Start(algorithm, tracer(marks))
	}()
}

func (h *Handlers) HandleStop() {
	if !h.animator.Running() {
		return
	}
	h.animator.Stop()
	h.guiManager.UpdateStatus("Stopping...")
}

func (h *Handlers) handleSortFinished(algorithm string, cancelled bool) {
	if cancelled {
		h.guiManager.UpdateStatus("Ready")
		return
	}
	h.guiManager.UpdateStatus(fmt.Sprintf("%s sort finished", algorithm))
}

// RefreshAll reloads the table, the record count and the bars from
// the database.
func (h *Handlers) RefreshAll() {
	go func() {
		students, err := h.store.ListStudents()
		if err != nil {
			h.guiManager.ShowError("Load Failed", err)
			return
		}

		h.guiManager.SetStudents(students)
		h.guiManager.ClearForm()
		fyne.Do(func() {
			h.board.Load(students)
		})
	}()
}

func (h *Handlers) currentSelection() uint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.selectedID
}

func (h *Handlers) clearSelection() {
	h.mu.Lock()
	h.selectedID = 0
	h.mu.Unlock()
}

func (h *Handlers) showStoreError(title string, err error) {
	switch {
	case errors.Is(err, storage.ErrDuplicateRoll):
		h.guiManager.ShowError("Duplicate", storage.ErrDuplicateRoll)
	case errors.Is(err, storage.ErrNotFound):
		h.guiManager.ShowError(title, storage.ErrNotFound)
	default:
		h.guiManager.ShowError(title, err)
	}
}
