package service

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces an uploaded name to a safe flat file name.
// Accents are decomposed and non-ASCII dropped, path separators become spaces,
// whitespace runs become a single underscore, anything outside [A-Za-z0-9_.-] is removed,
// and leading/trailing dots and underscores are trimmed. The result may be empty.
func SanitizeFilename(name string) string {
	name = norm.NFKD.String(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}

	name = strings.NewReplacer("/", " ", `\`, " ").Replace(b.String())
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// DeriveLabel extracts the food label from a sanitized file name: the stem (extension removed)
// cut at the first underscore, then at the first dot. Case is preserved, so "Banana.png" yields "Banana".
func DeriveLabel(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	stem, _, _ = strings.Cut(stem, "_")
	stem, _, _ = strings.Cut(stem, ".")
	return stem
}

// fileExtension returns the text after the last dot, or "" when there is none.
func fileExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}
