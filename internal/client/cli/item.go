package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/okorotkov/taskpad/internal/client/models"
)

func promptTaskID(reader *bufio.Reader) (int64, error) {
	text, err := getSimpleText(reader, "Enter task id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", text)
	}
	return id, nil
}

func formatTask(t models.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("#%d [%s] (%s) %s", t.ID, mark, t.Priority, t.Title)
}

// Show fetches one task from the backend and prints its details.
func (a *App) Show(ctx context.Context) error {
	id, err := promptTaskID(a.reader)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	t, err := a.tasks.Get(ctx, id)
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn(formatTask(*t))
	if t.Description != nil && *t.Description != "" {
		printlnFn(*t.Description)
	}
	printlnFn("Created: " + t.CreatedAt.Local().Format("2006-01-02 15:04"))
	printlnFn("Updated: " + t.UpdatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// Toggle flips a task's completion flag.
func (a *App) Toggle(ctx context.Context) error {
	id, err := promptTaskID(a.reader)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	t, err := a.tasks.Toggle(ctx, id)
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn(formatTask(*t))
	return nil
}

// Delete removes a task after confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := promptTaskID(a.reader)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	confirm, err := getSimpleText(a.reader, "Delete task? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.tasks.Delete(ctx, id); err != nil {
		printAPIError(err)
		return err
	}

	printlnFn("Deleted")
	return nil
}
