package state

import (
	"testing"
	"time"

	"tableflip.dev/tick/pkg/model"
)

func TestAddTaskPrepends(t *testing.T) {
	tasks := []model.Task{{ID: "old", Title: "old"}}
	next, err := AddTask(tasks, model.Task{ID: "new", Title: "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 2 || next[0].ID != "new" {
		t.Fatalf("new task must be first: %+v", next)
	}
	if len(tasks) != 1 {
		t.Fatalf("input collection must not change")
	}
}

func TestAddTaskRejectsBlankTitle(t *testing.T) {
	tasks := []model.Task{{ID: "old", Title: "old"}}
	next, err := AddTask(tasks, model.Task{ID: "new", Title: "  "})
	if err == nil {
		t.Fatalf("expected a validation error")
	}
	if len(next) != 1 {
		t.Fatalf("failed add must leave the collection unchanged")
	}
}

func TestToggleTaskCompletion(t *testing.T) {
	tasks := []model.Task{{ID: "t1", Title: "a"}}
	next := ToggleTaskCompletion(tasks, "t1")
	if !next[0].IsCompleted {
		t.Fatalf("expected the task completed")
	}
	next = ToggleTaskCompletion(next, "t1")
	if next[0].IsCompleted {
		t.Fatalf("expected the toggle to flip back")
	}
}

func TestToggleNoteIsNoOp(t *testing.T) {
	tasks := []model.Task{{ID: "n1", Title: "note", IsNote: true}}
	next := ToggleTaskCompletion(tasks, "n1")
	if next[0].IsCompleted {
		t.Fatalf("notes have no completion state")
	}
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	tasks := []model.Task{{ID: "t1", Title: "a"}}
	next := ToggleTaskCompletion(tasks, "missing")
	if next[0].IsCompleted {
		t.Fatalf("unknown ids must change nothing")
	}
}

func TestSoftThenHardDelete(t *testing.T) {
	tasks := []model.Task{{ID: "t1", Title: "a"}, {ID: "t2", Title: "b"}}

	next := SoftDeleteTask(tasks, "t1")
	if !next[0].IsDeleted {
		t.Fatalf("expected t1 soft-deleted")
	}
	if len(next) != 2 {
		t.Fatalf("soft delete must keep the record")
	}

	next = HardDeleteTask(next, "t1")
	if len(next) != 1 || next[0].ID != "t2" {
		t.Fatalf("hard delete must remove the record: %+v", next)
	}
}

func TestSetExternalID(t *testing.T) {
	tasks := []model.Task{{ID: "t1", Title: "a"}}
	next := SetExternalID(tasks, "t1", "remote-9")
	if next[0].ExternalID != "remote-9" {
		t.Fatalf("expected the external id written back")
	}

	// Task deleted while the sync call was in flight.
	next = SetExternalID(nil, "t1", "remote-9")
	if len(next) != 0 {
		t.Fatalf("missing task must be a no-op")
	}
}

func TestLinkAsSubtaskMerges(t *testing.T) {
	due := model.At(time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	tasks := []model.Task{
		{ID: "parent", Title: "parent", Subtasks: []model.Subtask{{ID: "s0", Title: "existing"}}},
		{ID: "child", Title: "child", Priority: model.PriorityHigh, DueDate: &due},
	}

	next := LinkAsSubtask(tasks, "child", "parent")
	if len(next) != 1 {
		t.Fatalf("child must leave the collection: %+v", next)
	}
	parent := next[0]
	if len(parent.Subtasks) != 2 {
		t.Fatalf("expected the snapshot appended, got %+v", parent.Subtasks)
	}
	snap := parent.Subtasks[1]
	if snap.ID != "child" || snap.Priority != model.PriorityHigh || snap.DueDate == nil {
		t.Fatalf("snapshot lost fields: %+v", snap)
	}
}

func TestLinkAsSubtaskSelfIsNoOp(t *testing.T) {
	tasks := []model.Task{{ID: "t1", Title: "a"}}
	next := LinkAsSubtask(tasks, "t1", "t1")
	if len(next) != 1 || len(next[0].Subtasks) != 0 {
		t.Fatalf("self-link must change nothing: %+v", next)
	}
}

func TestLinkAsSubtaskMissingEndpointsAreNoOps(t *testing.T) {
	tasks := []model.Task{{ID: "t1", Title: "a"}}
	if next := LinkAsSubtask(tasks, "missing", "t1"); len(next) != 1 {
		t.Fatalf("missing child must change nothing")
	}
	if next := LinkAsSubtask(tasks, "t1", "missing"); len(next) != 1 {
		t.Fatalf("missing parent must change nothing")
	}
}

func TestAppendSubtasks(t *testing.T) {
	tasks := []model.Task{{ID: "t1", Title: "a"}}
	next := AppendSubtasks(tasks, "t1", []string{"step one", "step two"})
	subs := next[0].Subtasks
	if len(subs) != 2 {
		t.Fatalf("expected two subtasks, got %d", len(subs))
	}
	for _, s := range subs {
		if s.ID == "" {
			t.Fatalf("appended subtasks need fresh ids")
		}
		if s.IsCompleted {
			t.Fatalf("appended subtasks start incomplete")
		}
	}
	if subs[0].ID == subs[1].ID {
		t.Fatalf("subtask ids must differ")
	}
}
