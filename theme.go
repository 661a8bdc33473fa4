package main

import "github.com/gdamore/tcell/v2"

// Theme is a named color table consumed read-only by the renderer.
type Theme struct {
	name string

	background        tcell.Color
	foreground        tcell.Color
	selection         tcell.Color
	cursor            tcell.Color
	cursorLine        tcell.Color
	lineNumber        tcell.Color
	lineNumberCurrent tcell.Color
	statusBarBg       tcell.Color
	statusBarFg       tcell.Color
	helpBarBg         tcell.Color
	helpBarFg         tcell.Color
	border            tcell.Color
	titleBg           tcell.Color
	titleFg           tcell.Color
	accent            tcell.Color
}

func rgb(r, g, b int32) tcell.Color {
	return tcell.NewRGBColor(r, g, b)
}

func monokaiPro() Theme {
	return Theme{
		name:              "monokai_pro",
		background:        rgb(39, 40, 34),
		foreground:        rgb(249, 238, 230),
		selection:         rgb(117, 113, 97),
		cursor:            rgb(249, 238, 230),
		cursorLine:        rgb(50, 52, 46),
		lineNumber:        rgb(100, 100, 100),
		lineNumberCurrent: rgb(255, 200, 100),
		statusBarBg:       rgb(30, 30, 25),
		statusBarFg:       rgb(200, 200, 190),
		helpBarBg:         rgb(30, 30, 25),
		helpBarFg:         rgb(150, 150, 140),
		border:            rgb(60, 58, 53),
		titleBg:           rgb(35, 35, 30),
		titleFg:           rgb(255, 200, 100),
		accent:            rgb(255, 200, 100),
	}
}

func nordFrost() Theme {
	return Theme{
		name:              "nord_frost",
		background:        rgb(46, 52, 64),
		foreground:        rgb(216, 222, 233),
		selection:         rgb(59, 66, 82),
		cursor:            rgb(136, 192, 208),
		cursorLine:        rgb(59, 66, 82),
		lineNumber:        rgb(76, 86, 106),
		lineNumberCurrent: rgb(136, 192, 208),
		statusBarBg:       rgb(40, 46, 56),
		statusBarFg:       rgb(216, 222, 233),
		helpBarBg:         rgb(40, 46, 56),
		helpBarFg:         rgb(136, 192, 208),
		border:            rgb(67, 79, 94),
		titleBg:           rgb(40, 46, 56),
		titleFg:           rgb(136, 192, 208),
		accent:            rgb(136, 192, 208),
	}
}

func draculaVibrant() Theme {
	return Theme{
		name:              "dracula_vibrant",
		background:        rgb(40, 42, 54),
		foreground:        rgb(248, 248, 242),
		selection:         rgb(69, 71, 90),
		cursor:            rgb(255, 121, 198),
		cursorLine:        rgb(60, 62, 80),
		lineNumber:        rgb(90, 90, 110),
		lineNumberCurrent: rgb(255, 121, 198),
		statusBarBg:       rgb(30, 30, 45),
		statusBarFg:       rgb(200, 200, 195),
		helpBarBg:         rgb(30, 30, 45),
		helpBarFg:         rgb(139, 233, 253),
		border:            rgb(80, 82, 100),
		titleBg:           rgb(35, 37, 50),
		titleFg:           rgb(255, 121, 198),
		accent:            rgb(189, 147, 249),
	}
}

func gruvboxSoft() Theme {
	return Theme{
		name:              "gruvbox_soft",
		background:        rgb(40, 40, 40),
		foreground:        rgb(235, 219, 178),
		selection:         rgb(80, 73, 69),
		cursor:            rgb(254, 128, 25),
		cursorLine:        rgb(55, 53, 50),
		lineNumber:        rgb(100, 90, 80),
		lineNumberCurrent: rgb(254, 128, 25),
		statusBarBg:       rgb(35, 35, 35),
		statusBarFg:       rgb(200, 185, 165),
		helpBarBg:         rgb(35, 35, 35),
		helpBarFg:         rgb(160, 145, 125),
		border:            rgb(70, 65, 60),
		titleBg:           rgb(30, 30, 30),
		titleFg:           rgb(254, 128, 25),
		accent:            rgb(184, 187, 38),
	}
}

func oneDark() Theme {
	return Theme{
		name:              "one_dark",
		background:        rgb(40, 44, 52),
		foreground:        rgb(220, 223, 228),
		selection:         rgb(57, 62, 70),
		cursor:            rgb(97, 175, 239),
		cursorLine:        rgb(50, 54, 62),
		lineNumber:        rgb(90, 95, 105),
		lineNumberCurrent: rgb(97, 175, 239),
		statusBarBg:       rgb(33, 37, 43),
		statusBarFg:       rgb(190, 195, 200),
		helpBarBg:         rgb(33, 37, 43),
		helpBarFg:         rgb(97, 175, 239),
		border:            rgb(60, 65, 75),
		titleBg:           rgb(30, 34, 40),
		titleFg:           rgb(97, 175, 239),
		accent:            rgb(97, 175, 239),
	}
}

var themeOrder = []string{
	"monokai_pro", "nord_frost", "dracula_vibrant", "gruvbox_soft", "one_dark",
}

func themeByName(name string) Theme {
	switch name {
	case "monokai_pro", "monokai":
		return monokaiPro()
	case "nord_frost", "nord":
		return nordFrost()
	case "dracula_vibrant", "dracula":
		return draculaVibrant()
	case "gruvbox_soft", "gruvbox":
		return gruvboxSoft()
	case "one_dark":
		return oneDark()
	default:
		return monokaiPro()
	}
}

func nextTheme(current string) Theme {
	for i, name := range themeOrder {
		if name == current {
			return themeByName(themeOrder[(i+1)%len(themeOrder)])
		}
	}
	return themeByName(themeOrder[0])
}
