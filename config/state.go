package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"galeria/log"
)

const StateFileName = "state.json"

const maxRecentDirs = 10

// State is persisted application state that survives restarts: which help
// screens the user has seen and the most recently opened galleries.
type State struct {
	// HelpScreensSeen is a bitmask of help screens already shown.
	HelpScreensSeen uint32 `json:"help_screens_seen"`
	// RecentPaths holds the most recently opened directories or album
	// manifests, newest first.
	RecentPaths []string `json:"recent_paths"`
}

// DefaultState returns the default state.
func DefaultState() *State {
	return &State{}
}

// LoadState reads the state file, falling back to an empty state on any
// failure. State is best-effort; losing it only loses convenience.
func LoadState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultState()
	}

	statePath := filepath.Join(configDir, StateFileName)
	data, err := os.ReadFile(statePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read state file: %v", err)
		}
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.ErrorLog.Printf("failed to parse state file: %v", err)
		return DefaultState()
	}

	return &state
}

// SaveState writes the state file.
func SaveState(state *State) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, StateFileName), data, 0644)
}

// AddRecentPath records path as the most recently opened gallery, deduplicating
// and keeping at most maxRecentDirs entries.
func (s *State) AddRecentPath(path string) {
	recent := make([]string, 0, maxRecentDirs)
	recent = append(recent, path)
	for _, p := range s.RecentPaths {
		if p == path {
			continue
		}
		recent = append(recent, p)
		if len(recent) == maxRecentDirs {
			break
		}
	}
	s.RecentPaths = recent
}

// HasSeenHelpScreen reports whether the help screen with the given bit was
// already shown.
func (s *State) HasSeenHelpScreen(bit uint32) bool {
	return s.HelpScreensSeen&bit != 0
}

// MarkHelpScreenSeen records the help screen with the given bit as shown.
func (s *State) MarkHelpScreenSeen(bit uint32) {
	s.HelpScreensSeen |= bit
}
