package html

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/labstack/echo/v4"

	"greenearth.GO/core/price"
	entity "greenearth.GO/model/entity/catalog"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewTemplate parses the embedded storefront templates.
func NewTemplate() (*Template, error) {
	tmpl, err := template.New("storefront").Funcs(TemplateFuncs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Template{Templates: tmpl}, nil
}

// TemplateFuncs returns FuncMap with helpers for category links and prices
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatPrice": price.Format,
		"categoryURL": categoryURL,
	}
}

// categoryURL links to the page scoped to a category; "all" is the bare page.
func categoryURL(id string) string {
	if entity.IsAll(id) {
		return "/"
	}
	return "/?" + url.Values{"category": {id}}.Encode()
}
