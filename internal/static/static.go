package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var StaticFS embed.FS

// FileSystem returns the embedded assets rooted at the static directory, ready to be served under /static.
func FileSystem() http.FileSystem {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return http.FS(sub)
}
