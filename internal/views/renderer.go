// Package views renders the site's HTML. Templates are embedded in the
// binary and composed from shared partials (head, nav, notices, footer)
// plus one named template per page.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templatesFS embed.FS

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").
		Funcs(template.FuncMap{
			"commas": commas,
			"usd":    usd,
		}).
		ParseFS(templatesFS, "templates/*.gohtml", "templates/*/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("views: parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render satisfies echo.Renderer. name is the page template, e.g.
// "account/login".
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// commas renders an integer with thousands separators (24537 -> "24,537").
func commas(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// usd renders a price with separators, rounded to the nearest cent.
// Whole-dollar amounts drop the fractional part (24999.99 -> "$24,999.99",
// 32999 -> "$32,999").
func usd(v float64) string {
	cents := int(math.Round(v * 100))
	if cents%100 == 0 {
		return "$" + commas(cents/100)
	}
	return fmt.Sprintf("$%s.%02d", commas(cents/100), cents%100)
}
