package cli

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// List reloads the task list from the backend and prints it newest first.
func (a *App) List(ctx context.Context) error {
	if err := a.tasks.Load(ctx); err != nil {
		printAPIError(err)
		return err
	}

	list := a.tasks.Tasks()
	if len(list) == 0 {
		printlnFn("No tasks yet. Type 'add' to create one.")
		return nil
	}
	for _, t := range list {
		printlnFn(formatTask(t))
	}
	return nil
}

// Calendar prints the current month's tasks grouped by creation day.
func (a *App) Calendar(ctx context.Context) error {
	if err := a.tasks.Load(ctx); err != nil {
		printAPIError(err)
		return err
	}

	now := time.Now().UTC()
	days := a.tasks.Calendar(now.Year(), now.Month())
	if len(days) == 0 {
		printlnFn("No tasks in " + now.Month().String())
		return nil
	}

	ordered := make([]int, 0, len(days))
	for day := range days {
		ordered = append(ordered, day)
	}
	sort.Ints(ordered)

	for _, day := range ordered {
		printlnFn(fmt.Sprintf("%s %d:", now.Month(), day))
		for _, t := range days[day] {
			printlnFn("  " + formatTask(t))
		}
	}
	return nil
}
