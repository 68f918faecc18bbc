package cli

import (
	"testing"
	"time"

	"github.com/okorotkov/taskpad/internal/client/models"
)

func TestFormatTask(t *testing.T) {
	task := models.Task{ID: 7, Title: "Buy milk", Priority: models.PriorityHigh, Completed: true}
	got := formatTask(task)
	want := "#7 [x] (high) Buy milk"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	task.Completed = false
	got = formatTask(task)
	want = "#7 [ ] (high) Buy milk"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPromptTaskID(t *testing.T) {
	id, err := promptTaskID(rdr("42\n"))
	if err != nil || id != 42 {
		t.Fatalf("got %d, err=%v", id, err)
	}
}

func TestPromptTaskID_Invalid(t *testing.T) {
	if _, err := promptTaskID(rdr("banana\n")); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}

func TestToggle(t *testing.T) {
	muteOutput(t)

	f := &fakeClient{
		user:    &models.User{ID: "u1"},
		toggled: &models.Task{ID: 3, Title: "t", Completed: true, UpdatedAt: time.Now()},
	}
	a, ctx := newTestApp(f)
	a.session.Init(ctx)
	a.reader = rdr("3\n")

	if err := a.Toggle(ctx); err != nil {
		t.Fatalf("Toggle err: %v", err)
	}
}

func TestDelete_Confirmed(t *testing.T) {
	muteOutput(t)

	f := &fakeClient{user: &models.User{ID: "u1"}}
	a, ctx := newTestApp(f)
	a.session.Init(ctx)
	a.reader = rdr("5\ny\n")

	if err := a.Delete(ctx); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if len(f.deletedIDs) != 1 || f.deletedIDs[0] != 5 {
		t.Fatalf("deleted ids: %v", f.deletedIDs)
	}
}

func TestDelete_Cancelled(t *testing.T) {
	muteOutput(t)

	f := &fakeClient{user: &models.User{ID: "u1"}}
	a, ctx := newTestApp(f)
	a.session.Init(ctx)
	a.reader = rdr("5\nn\n")

	if err := a.Delete(ctx); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if len(f.deletedIDs) != 0 {
		t.Fatalf("delete should not reach the client: %v", f.deletedIDs)
	}
}

func TestShow_NotSignedIn(t *testing.T) {
	muteOutput(t)

	a, ctx := newTestApp(&fakeClient{})
	a.reader = rdr("1\n")

	if err := a.Show(ctx); err == nil {
		t.Fatal("expected error when not signed in")
	}
}
