package view

import (
	"bytes"
	"embed"
	"html/template"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}).ParseFS(templateFS, "templates/*.html"))

// Page is the data every template receives.
type Page struct {
	Title    string
	Username string
	IsAdmin  bool
	Error    string
	Next     string
	Data     any
}

// Render executes the named template into a buffer first so a template
// failure never leaves a half-written page.
func Render(c *fiber.Ctx, status int, name string, p Page) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, p); err != nil {
		log.Printf("[ERROR] render %s: %v", name, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
