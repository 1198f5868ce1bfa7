// Package web empaqueta la interfaz de chat (plantilla y archivos estaticos)
// dentro del binario.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html static/*
var assets embed.FS

// IndexTemplate es el nombre con el que se renderiza la pagina principal.
const IndexTemplate = "index.html"

// Templates parsea las plantillas HTML embebidas.
func Templates() (*template.Template, error) {
	return template.ParseFS(assets, "templates/*.html")
}

// Static devuelve el arbol de archivos servido bajo /static.
func Static() (fs.FS, error) {
	return fs.Sub(assets, "static")
}
