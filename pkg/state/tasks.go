// Package state holds the pure collection mutators. Every function takes
// the current collection plus parameters and returns the next collection;
// none of them performs I/O. Conditions like unknown ids or toggling a
// note's completion are defined no-ops that return the input unchanged.
package state

import (
	"tableflip.dev/tick/pkg/model"
)

// AddTask validates and inserts a task at the head of the collection.
func AddTask(tasks []model.Task, t model.Task) ([]model.Task, error) {
	if err := t.Validate(); err != nil {
		return tasks, err
	}
	next := make([]model.Task, 0, len(tasks)+1)
	next = append(next, t)
	next = append(next, tasks...)
	return next, nil
}

// UpdateTask replaces the task with a matching id.
func UpdateTask(tasks []model.Task, updated model.Task) []model.Task {
	next := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == updated.ID {
			next[i] = updated
		} else {
			next[i] = t
		}
	}
	return next
}

// ToggleTaskCompletion flips isCompleted on the matching task. Notes have
// no completion state, so toggling a note leaves the collection unchanged.
func ToggleTaskCompletion(tasks []model.Task, taskID string) []model.Task {
	next := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == taskID && !t.IsNote {
			t.IsCompleted = !t.IsCompleted
		}
		next[i] = t
	}
	return next
}

// SoftDeleteTask marks the task deleted, keeping it reachable from trash.
func SoftDeleteTask(tasks []model.Task, taskID string) []model.Task {
	next := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == taskID {
			t.IsDeleted = true
		}
		next[i] = t
	}
	return next
}

// HardDeleteTask removes the task outright. It does not require the task
// to be soft-deleted first; the CLI trash path does that itself.
func HardDeleteTask(tasks []model.Task, taskID string) []model.Task {
	next := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == taskID {
			continue
		}
		next = append(next, t)
	}
	return next
}

// SetExternalID writes the remote calendar id back onto the matching
// task. A missing id means the task was deleted while the sync call was
// in flight; the write-back is then a no-op, not an error.
func SetExternalID(tasks []model.Task, taskID, externalID string) []model.Task {
	next := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == taskID {
			t.ExternalID = externalID
		}
		next[i] = t
	}
	return next
}

// LinkAsSubtask merges the child task into the parent's subtasks and
// removes the child from the collection. The merge is one-way: there is
// no operation that promotes a subtask back to a standalone task.
func LinkAsSubtask(tasks []model.Task, childID, parentID string) []model.Task {
	if childID == parentID {
		return tasks
	}
	var child *model.Task
	foundParent := false
	for i := range tasks {
		switch tasks[i].ID {
		case childID:
			child = &tasks[i]
		case parentID:
			foundParent = true
		}
	}
	if child == nil || !foundParent {
		return tasks
	}

	snapshot := child.AsSubtask()
	next := make([]model.Task, 0, len(tasks)-1)
	for _, t := range tasks {
		if t.ID == childID {
			continue
		}
		if t.ID == parentID {
			subtasks := make([]model.Subtask, 0, len(t.Subtasks)+1)
			subtasks = append(subtasks, t.Subtasks...)
			subtasks = append(subtasks, snapshot)
			t.Subtasks = subtasks
		}
		next = append(next, t)
	}
	return next
}

// AppendSubtasks adds incomplete subtasks with fresh ids to the matching
// task, one per title. Used by the suggestion flow.
func AppendSubtasks(tasks []model.Task, taskID string, titles []string) []model.Task {
	if len(titles) == 0 {
		return tasks
	}
	next := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == taskID {
			subtasks := make([]model.Subtask, 0, len(t.Subtasks)+len(titles))
			subtasks = append(subtasks, t.Subtasks...)
			for _, title := range titles {
				subtasks = append(subtasks, model.Subtask{
					ID:    model.NewID(),
					Title: title,
				})
			}
			t.Subtasks = subtasks
		}
		next[i] = t
	}
	return next
}

// FindTask looks a task up by id.
func FindTask(tasks []model.Task, taskID string) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return model.Task{}, false
}
