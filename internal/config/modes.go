package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Mode is one entry of the new-game menu.
type Mode struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	MaxGuesses  int    `yaml:"max_guesses"`
	HardMode    bool   `yaml:"hard_mode"`
	Hints       int    `yaml:"hints"`
}

// Options converts the mode to game options.
func (m Mode) Options() game.Options {
	return game.Options{MaxGuesses: m.MaxGuesses, HardMode: m.HardMode, Hints: m.Hints}
}

// DefaultModes is the built-in menu.
func DefaultModes() []Mode {
	return []Mode{
		{Name: "Easy", Description: "3 hints, normal mode", Hints: 3},
		{Name: "Normal", Description: "0 hints, normal mode"},
		{Name: "Hard", Description: "0 hints, hard mode", HardMode: true},
	}
}

// modesFile is the YAML document shape:
//
//	modes:
//	  - name: Easy
//	    hints: 3
type modesFile struct {
	Modes []Mode `yaml:"modes"`
}

// LoadModes reads mode presets from a YAML file.
func LoadModes(path string) ([]Mode, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read modes %s: %w", path, err)
	}
	var doc modesFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse modes %s: %w", path, err)
	}
	if err := validateModes(doc.Modes); err != nil {
		return nil, fmt.Errorf("modes %s: %w", path, err)
	}
	return doc.Modes, nil
}

func validateModes(modes []Mode) error {
	if len(modes) == 0 {
		return errors.New("no modes defined")
	}
	seen := map[string]bool{}
	for i, m := range modes {
		name := strings.ToLower(strings.TrimSpace(m.Name))
		if name == "" {
			return fmt.Errorf("mode %d: name is required", i+1)
		}
		if seen[name] {
			return fmt.Errorf("mode %q defined twice", m.Name)
		}
		seen[name] = true
		if m.MaxGuesses < 0 {
			return fmt.Errorf("mode %q: max_guesses must not be negative", m.Name)
		}
	}
	return nil
}
