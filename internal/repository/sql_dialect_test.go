package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestDayExprDefaultsToSQLite(t *testing.T) {
	got := dayExpr(nil, "created_at")
	want := "strftime('%Y-%m-%d', created_at)"
	if got != want {
		t.Fatalf("nil db day expr mismatch, want %s got %s", want, got)
	}
}

func TestDayExprSQLiteDialector(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	got := dayExpr(db, "orders.created_at")
	want := "strftime('%Y-%m-%d', orders.created_at)"
	if got != want {
		t.Fatalf("sqlite day expr mismatch, want %s got %s", want, got)
	}
}
