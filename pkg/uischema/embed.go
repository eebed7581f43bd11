package uischema

import (
	"embed"
	"io/fs"
)

//go:embed ui/forms/*
var embeddedForms embed.FS

// DefaultFormID names the form shipped in EmbeddedFS.
const DefaultFormID = "person"

// EmbeddedFS returns the bundled form documents. Callers may pass this
// filesystem to LoadFS to get the default person form.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedForms, "ui/forms")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
