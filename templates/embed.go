// Package templates ships the default technology-template catalog,
// embedded so the CLI works without any on-disk setup.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:catalog
var catalogFS embed.FS

// Catalog returns the embedded default catalog rooted at the template
// directories themselves.
func Catalog() fs.FS {
	sub, err := fs.Sub(catalogFS, "catalog")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
