package main

import "time"

var tips = []string{
	"Press Ctrl+F to search for text in the file",
	"Press Ctrl+\\ to find and replace text",
	"Press Ctrl+G to jump to a specific line number",
	"Use Ctrl+Z to undo and Ctrl+Y to redo changes",
	"Press Ctrl+Shift+T to cycle through different themes",
	"Press Ctrl+B to toggle line numbers on/off",
	"Enable use_spaces in the config for spaces instead of tabs",
	"Auto-indent is on by default - it preserves code structure",
	"Press Ctrl+W to toggle word wrap for long lines",
	"Use Ctrl+O to open a file, Ctrl+S to save",
}

func randomTip() string {
	return tips[int(time.Now().UnixMilli())%len(tips)]
}

var helpLines = []string{
	"Key          Action              Key          Action",
	"------------------------------------------------",
	"Ctrl+O       Open file           Ctrl+Z       Undo",
	"Ctrl+S       Save file           Ctrl+Y       Redo",
	"Ctrl+F       Find text           Ctrl+Shift+T Change theme",
	"Ctrl+G       Go to line          Ctrl+B       Toggle lines",
	"Ctrl+\\       Replace             Ctrl+W       Toggle wrap",
	"Ctrl+Q       Quit                Ctrl+H       Help",
}

var helpShortcuts = []struct {
	key    string
	action string
}{
	{"Ctrl+H", "Help"},
	{"Ctrl+O", "Open"},
	{"Ctrl+S", "Save"},
	{"Ctrl+F", "Find"},
}
