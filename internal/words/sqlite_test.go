package words

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func seedDB(t *testing.T, words ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "words.db")
	db, err := sql.Open("sqlite3", p)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE words (word TEXT)`); err != nil {
		t.Fatal(err)
	}
	for _, w := range words {
		if _, err := db.Exec(`INSERT INTO words(word) VALUES (?)`, w); err != nil {
			t.Fatal(err)
		}
	}
	return p
}

func TestLoadSQLite(t *testing.T) {
	p := seedDB(t, "crane", "SLATE", "toolong", "")
	d, rep, err := LoadSQLite(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Kept != 2 || rep.WrongLength != 1 || rep.Source != "sqlite:"+p {
		t.Errorf("report = %+v", rep)
	}
	if !d.Contains("CRANE") || !d.Contains("slate") {
		t.Errorf("words = %v", d.Words())
	}
}

func TestLoad_PrefersDB(t *testing.T) {
	p := seedDB(t, "mouse")
	d, _, err := Load(context.Background(), Options{DB: p, File: "/does/not/matter"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 || !d.Contains("MOUSE") {
		t.Errorf("words = %v", d.Words())
	}
}

func TestLoadSQLite_MissingTable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", p)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE other (x INTEGER)`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	if _, _, err := LoadSQLite(context.Background(), p); err == nil {
		t.Error("expected error for missing words table")
	}
}
