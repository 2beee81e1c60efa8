package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/byteorem/banshee-bot/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Init(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetCustomCommand(t *testing.T) {
	db := newTestDB(t)

	cmd := &model.CustomCommand{
		GuildID:     "1",
		CommandName: "lootpolicy",
		Content:     "Loot rules",
		CreatedBy:   "42",
	}
	if err := CreateCustomCommand(db, cmd); err != nil {
		t.Fatalf("CreateCustomCommand failed: %v", err)
	}
	if cmd.ID == 0 {
		t.Fatal("CreateCustomCommand did not assign an ID")
	}

	got, err := GetCustomCommand(db, "1", "lootpolicy")
	if err != nil {
		t.Fatalf("GetCustomCommand failed: %v", err)
	}
	if got.Content != "Loot rules" || got.CreatedBy != "42" {
		t.Fatalf("GetCustomCommand = %+v, want stored record", got)
	}

	if _, err := GetCustomCommand(db, "1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetCustomCommand of missing record = %v, want ErrNotFound", err)
	}
}

func TestCreateCustomCommandDuplicate(t *testing.T) {
	db := newTestDB(t)

	first := &model.CustomCommand{GuildID: "1", CommandName: "dup", Content: "a", CreatedBy: "42"}
	if err := CreateCustomCommand(db, first); err != nil {
		t.Fatalf("CreateCustomCommand failed: %v", err)
	}

	second := &model.CustomCommand{GuildID: "1", CommandName: "dup", Content: "b", CreatedBy: "42"}
	if err := CreateCustomCommand(db, second); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate CreateCustomCommand = %v, want ErrDuplicate", err)
	}

	other := &model.CustomCommand{GuildID: "2", CommandName: "dup", Content: "c", CreatedBy: "42"}
	if err := CreateCustomCommand(db, other); err != nil {
		t.Fatalf("CreateCustomCommand in other guild failed: %v", err)
	}
}

func TestUpdateCustomCommand(t *testing.T) {
	db := newTestDB(t)

	cmd := &model.CustomCommand{GuildID: "1", CommandName: "foo", Content: "a", CreatedBy: "42"}
	if err := CreateCustomCommand(db, cmd); err != nil {
		t.Fatalf("CreateCustomCommand failed: %v", err)
	}
	taken := &model.CustomCommand{GuildID: "1", CommandName: "taken", Content: "b", CreatedBy: "42"}
	if err := CreateCustomCommand(db, taken); err != nil {
		t.Fatalf("CreateCustomCommand failed: %v", err)
	}

	if err := UpdateCustomCommand(db, cmd.ID, "bar", "new content"); err != nil {
		t.Fatalf("UpdateCustomCommand failed: %v", err)
	}
	got, err := GetCustomCommand(db, "1", "bar")
	if err != nil {
		t.Fatalf("GetCustomCommand after rename failed: %v", err)
	}
	if got.Content != "new content" {
		t.Fatalf("content after update = %q, want %q", got.Content, "new content")
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Fatal("updated_at went backwards")
	}

	if err := UpdateCustomCommand(db, cmd.ID, "taken", "x"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("colliding UpdateCustomCommand = %v, want ErrDuplicate", err)
	}
	if err := UpdateCustomCommand(db, 99999, "nope", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateCustomCommand of missing id = %v, want ErrNotFound", err)
	}
}

func TestDeleteCustomCommand(t *testing.T) {
	db := newTestDB(t)

	if err := DeleteCustomCommand(db, "1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteCustomCommand of missing record = %v, want ErrNotFound", err)
	}

	cmd := &model.CustomCommand{GuildID: "1", CommandName: "doomed", Content: "a", CreatedBy: "42"}
	if err := CreateCustomCommand(db, cmd); err != nil {
		t.Fatalf("CreateCustomCommand failed: %v", err)
	}
	if err := DeleteCustomCommand(db, "1", "doomed"); err != nil {
		t.Fatalf("DeleteCustomCommand failed: %v", err)
	}
	if _, err := GetCustomCommand(db, "1", "doomed"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetCustomCommand after delete = %v, want ErrNotFound", err)
	}

	// Deleting frees the name for reuse.
	again := &model.CustomCommand{GuildID: "1", CommandName: "doomed", Content: "b", CreatedBy: "42"}
	if err := CreateCustomCommand(db, again); err != nil {
		t.Fatalf("CreateCustomCommand after delete failed: %v", err)
	}
}

func TestListCustomCommandsOrder(t *testing.T) {
	db := newTestDB(t)

	for _, name := range []string{"zulu", "alpha", "mike"} {
		cmd := &model.CustomCommand{GuildID: "1", CommandName: name, Content: "c", CreatedBy: "42"}
		if err := CreateCustomCommand(db, cmd); err != nil {
			t.Fatalf("CreateCustomCommand %s failed: %v", name, err)
		}
	}

	cmds, err := ListCustomCommands(db, "1")
	if err != nil {
		t.Fatalf("ListCustomCommands failed: %v", err)
	}
	want := []string{"zulu", "alpha", "mike"}
	if len(cmds) != len(want) {
		t.Fatalf("ListCustomCommands returned %d records, want %d", len(cmds), len(want))
	}
	for n, name := range want {
		if cmds[n].CommandName != name {
			t.Fatalf("list[%d] = %q, want creation order %q", n, cmds[n].CommandName, name)
		}
	}
}
