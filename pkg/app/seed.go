package app

import (
	"tableflip.dev/tick/pkg/model"
)

// First-run defaults, written on the first save after an empty load.

func seedLists() []model.List {
	return []model.List{
		{ID: "work", Name: "Work", Color: "#3b82f6"},
		{ID: "personal", Name: "Personal", Color: "#10b981"},
	}
}

func seedTasks() []model.Task {
	now := model.Now()
	return []model.Task{
		{
			ID:          model.NewID(),
			Title:       "Welcome to tick!",
			Description: "This is a sample task. Try `tick complete` on it.",
			Priority:    model.PriorityHigh,
			ListID:      model.InboxListID,
			Tags:        []string{"welcome"},
			DueDate:     &now,
			Subtasks:    []model.Subtask{},
			Attachments: []model.Attachment{},
			CreatedAt:   &now,
		},
	}
}

func seedFocusCategories() []model.FocusCategory {
	return []model.FocusCategory{
		{ID: "fc1", Name: "Work", Icon: "briefcase", Color: "#3b82f6", Mode: model.TimerPomo, DefaultDuration: 25},
		{ID: "fc2", Name: "Study", Icon: "book", Color: "#f59e0b", Mode: model.TimerPomo, DefaultDuration: 45},
	}
}
