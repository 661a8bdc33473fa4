package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"
)

// Settings are the editing preferences persisted as TOML under the user's
// config directory. Unknown or missing keys fall back to defaults.
type Settings struct {
	TabSize              int    `toml:"tab_size"`
	UseSpaces            bool   `toml:"use_spaces"`
	AutoIndent           bool   `toml:"auto_indent"`
	ShowLineNumbers      bool   `toml:"show_line_numbers"`
	HighlightCurrentLine bool   `toml:"highlight_current_line"`
	WordWrap             bool   `toml:"word_wrap"`
	AutoSave             bool   `toml:"auto_save"`
	Theme                string `toml:"theme"`
	ShowTabs             bool   `toml:"show_tabs"`
	ShowStatusBar        bool   `toml:"show_status_bar"`
	ShowHelp             bool   `toml:"show_help"`
	MouseSupport         bool   `toml:"mouse_support"`
}

func defaultSettings() Settings {
	return Settings{
		TabSize:              4,
		UseSpaces:            true,
		AutoIndent:           true,
		ShowLineNumbers:      true,
		HighlightCurrentLine: true,
		WordWrap:             false,
		AutoSave:             false,
		Theme:                "monokai_pro",
		ShowTabs:             true,
		ShowStatusBar:        true,
		ShowHelp:             true,
		MouseSupport:         true,
	}
}

func settingsPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nova", "config.toml"), nil
}

// loadSettings reads the config file; any failure yields defaults.
func loadSettings() Settings {
	path, err := settingsPath()
	if err != nil {
		return defaultSettings()
	}
	return loadSettingsFrom(path)
}

func loadSettingsFrom(path string) Settings {
	s := defaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return defaultSettings()
	}
	return s
}

func (s Settings) save() error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	return s.saveTo(path)
}

func (s Settings) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}
