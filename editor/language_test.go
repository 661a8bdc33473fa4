package editor

import "testing"

func TestDetectLanguage(t *testing.T) {
	cases := map[string]string{
		"main.rs":      "rust",
		"app.TS":       "typescript",
		"/tmp/x/y.py":  "python",
		"notes.md":     "markdown",
		"Makefile":     "plaintext",
		"archive.tgz":  "plaintext",
		"styles.css":   "css",
		"index.html":   "html",
		"config.toml":  "toml",
		"service.yaml": "yaml",
	}
	for path, want := range cases {
		if got := DetectLanguage(path); got != want {
			t.Fatalf("DetectLanguage(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestKnownExtension(t *testing.T) {
	if !KnownExtension("readme.TXT") {
		t.Fatal("txt should be openable")
	}
	if KnownExtension("image.png") {
		t.Fatal("png should not be openable")
	}
	if KnownExtension("noext") {
		t.Fatal("extensionless file should not be openable")
	}
}

func TestCommentPrefix(t *testing.T) {
	cases := map[string]string{
		"python":    "#",
		"go":        "//",
		"html":      "<!--",
		"plaintext": "#",
	}
	for lang, want := range cases {
		if got := CommentPrefix(lang); got != want {
			t.Fatalf("CommentPrefix(%q) = %q, want %q", lang, got, want)
		}
	}
}
