package state

import (
	"tableflip.dev/tick/pkg/model"
)

// AddList appends a new list with a generated id.
func AddList(lists []model.List, name, color string) ([]model.List, model.List) {
	l := model.List{
		ID:    model.NewID(),
		Name:  name,
		Color: color,
	}
	next := make([]model.List, 0, len(lists)+1)
	next = append(next, lists...)
	next = append(next, l)
	return next, l
}

// DeleteList removes the list and reassigns every task that referenced it
// to the inbox sentinel. Both collections are recomputed in one pass and
// returned together so a list id never dangles.
func DeleteList(lists []model.List, tasks []model.Task, listID string) ([]model.List, []model.Task) {
	nextLists := make([]model.List, 0, len(lists))
	for _, l := range lists {
		if l.ID == listID {
			continue
		}
		nextLists = append(nextLists, l)
	}

	nextTasks := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.ListID == listID {
			t.ListID = model.InboxListID
		}
		nextTasks[i] = t
	}
	return nextLists, nextTasks
}

// FindList looks a list up by id.
func FindList(lists []model.List, listID string) (model.List, bool) {
	for _, l := range lists {
		if l.ID == listID {
			return l, true
		}
	}
	return model.List{}, false
}
