// Package views gömülü HTML şablonlarını ve şablon fonksiyonlarını sağlar.
package views

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"rehber.link/models"
	"rehber.link/pkg/queryparams"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts contacts partials errors dashboard
var FS embed.FS

// NewEngine gömülü şablonlar için Fiber view motorunu oluşturur.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFuncMap(Funcs())
	return engine
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"safeHTML":     func(s string) template.HTML { return template.HTML(s) },
		"pageURL":      PageURL,
		"contactTypes": models.ContactTypes,
	}
}

// PageURL liste sayfasının verilen sayfa numarasına giden yolunu, mevcut
// arama ve sıralama parametrelerini koruyarak üretir.
func PageURL(base string, page int, params queryparams.ListParams) string {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if params.Name != "" {
		q.Set("name", params.Name)
	}
	if params.SortBy != "" {
		q.Set("sort_by", params.SortBy)
		q.Set("order_by", params.OrderBy)
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}
