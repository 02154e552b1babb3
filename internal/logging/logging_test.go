package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "wordle.log")
	cleanup, err := Setup(Config{Level: "debug", File: p, Interactive: true})
	if err != nil {
		t.Fatal(err)
	}
	log.Debug().Str("gameId", "abc").Msg("hello")
	if err := cleanup(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	var line map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(b))), &line); err != nil {
		t.Fatalf("log line is not JSON: %q", b)
	}
	if line["message"] != "hello" || line["gameId"] != "abc" || line["level"] != "debug" {
		t.Errorf("line = %v", line)
	}
}

func TestSetup_LevelFallback(t *testing.T) {
	cleanup, err := Setup(Config{Level: "shouting", Interactive: true})
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v, want info", zerolog.GlobalLevel())
	}
}
