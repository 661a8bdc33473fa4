package editor

import (
	"path/filepath"
	"strings"
)

// Static extension-to-language table. This is a lookup, not a parser; the
// tag only feeds the status bar and comment-prefix selection.
var languageByExt = map[string]string{
	"rs":   "rust",
	"js":   "javascript",
	"mjs":  "javascript",
	"ts":   "typescript",
	"mts":  "typescript",
	"py":   "python",
	"rb":   "ruby",
	"go":   "go",
	"java": "java",
	"c":    "c",
	"h":    "c",
	"cpp":  "cpp",
	"cc":   "cpp",
	"cxx":  "cpp",
	"hpp":  "cpp",
	"cs":   "csharp",
	"php":  "php",
	"sh":   "bash",
	"bash": "bash",
	"zsh":  "bash",
	"json": "json",
	"yaml": "yaml",
	"yml":  "yaml",
	"toml": "toml",
	"xml":  "xml",
	"html": "html",
	"htm":  "html",
	"css":  "css",
	"md":   "markdown",
}

// knownExtensions limits what the open-file picker will load.
var knownExtensions = map[string]bool{
	"txt": true, "rs": true, "js": true, "ts": true, "py": true, "go": true,
	"md": true, "json": true, "toml": true, "yaml": true, "c": true,
	"h": true, "cpp": true, "hpp": true, "sh": true, "bash": true,
	"zsh": true, "html": true, "css": true, "xml": true,
}

func extOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// DetectLanguage maps a file path to its language tag by extension.
func DetectLanguage(path string) string {
	if lang, ok := languageByExt[extOf(path)]; ok {
		return lang
	}
	return "plaintext"
}

// KnownExtension reports whether the path has an extension the open-file
// selection is willing to load.
func KnownExtension(path string) bool {
	return knownExtensions[extOf(path)]
}

// CommentPrefix returns the line-comment leader for a language tag.
func CommentPrefix(language string) string {
	switch language {
	case "python", "ruby", "bash", "yaml", "toml":
		return "#"
	case "rust", "javascript", "typescript", "go", "java", "c", "cpp",
		"csharp", "php", "css", "json":
		return "//"
	case "html", "xml":
		return "<!--"
	default:
		return "#"
	}
}
