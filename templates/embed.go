// Package templates embeds the html views so the binary and the handler
// tests render without depending on the working directory.
package templates

import (
	"embed"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS

func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFunc("join", strings.Join)
	engine.AddFunc("seq", func(from int, to int) []int {
		result := make([]int, 0, to-from+1)
		for i := from; i <= to; i++ {
			result = append(result, i)
		}
		return result
	})
	return engine
}
