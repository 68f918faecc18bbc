package cli

import (
	"context"
	"os"

	"github.com/okorotkov/taskpad/internal/client/models"
)

// Add prompts for a new task and creates it. Empty priority defaults to
// medium; an empty description is omitted from the request.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	priorityText, err := getSimpleText(a.reader, "Enter priority (high/medium/low, default medium)", os.Stdout)
	if err != nil {
		return err
	}

	priority := models.PriorityMedium
	if priorityText != "" {
		priority, err = models.ParsePriority(priorityText)
		if err != nil {
			printlnFn("Error: " + err.Error())
			return err
		}
	}

	data := models.TaskCreate{Title: title, Priority: priority}
	if description != "" {
		data.Description = &description
	}

	t, err := a.tasks.Create(ctx, data)
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn("Created " + formatTask(*t))
	return nil
}
