package database

import (
	"errors"
	"testing"
)

func TestIsIgnorableMigrationErr(t *testing.T) {
	if !isIgnorableMigrationErr(errors.New("duplicate column name: updated_at")) {
		t.Fatalf("expected duplicate column error to be ignorable")
	}
	if isIgnorableMigrationErr(errors.New("no such table: garden")) {
		t.Fatalf("expected non-duplicate error to be non-ignorable")
	}
	if isIgnorableMigrationErr(nil) {
		t.Fatalf("expected nil error to be non-ignorable")
	}
}
