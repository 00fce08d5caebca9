package view

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// LayoutBase wraps every page. Pages render into it through {{embed}}.
const LayoutBase = "layouts/base"

// Assets returns the static files served under /assets.
func Assets() fs.FS {
	return mustSub(assetFS, "assets")
}

// NewEngine returns the fiber views over the embedded templates. Templates
// are named by their path without the extension, e.g. "pages/home".
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(mustSub(templateFS, "templates")), ".html")
	engine.AddFunc("join", strings.Join)
	return engine
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
