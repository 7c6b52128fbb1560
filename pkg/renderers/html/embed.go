package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Templates exposes the embedded template bundle so callers can extend or
// replace individual files while keeping the rest.
var Templates fs.FS = mustSub(embeddedTemplates, "templates")

func mustSub(files embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		return files
	}
	return sub
}
