package demo

import (
	"embed"
	"io/fs"
)

//go:embed views
var views embed.FS

//go:embed assets
var assets embed.FS

// Views holds the templates every logical view of the demo maps to,
// laid out for the default naming of views/<name>.tmpl.
var Views fs.FS = views

// Assets holds the static files the demo's views link to, rooted at assets.
var Assets fs.FS = mustSub(assets, "assets")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return sub
}
