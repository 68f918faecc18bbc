package cli

import (
	"context"
	"os"

	"github.com/okorotkov/taskpad/internal/client/models"
)

// Edit prompts for a task id and new field values, sending only the fields
// the user actually entered. Empty input keeps the current value.
func (a *App) Edit(ctx context.Context) error {
	id, err := promptTaskID(a.reader)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	current, err := a.tasks.Get(ctx, id)
	if err != nil {
		printAPIError(err)
		return err
	}
	printlnFn("Editing " + formatTask(*current))

	var data models.TaskUpdate

	title, err := getSimpleText(a.reader, "New title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if title != "" {
		data.Title = &title
	}

	description, err := GetMultiline(a.reader, "New description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		data.Description = &description
	}

	priorityText, err := getSimpleText(a.reader, "New priority (high/medium/low, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if priorityText != "" {
		priority, err := models.ParsePriority(priorityText)
		if err != nil {
			printlnFn("Error: " + err.Error())
			return err
		}
		data.Priority = &priority
	}

	if data.Title == nil && data.Description == nil && data.Priority == nil {
		printlnFn("Nothing to change")
		return nil
	}

	t, err := a.tasks.Update(ctx, id, data)
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn("Updated " + formatTask(*t))
	return nil
}
