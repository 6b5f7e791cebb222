package httpapi

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"warung-qris/shop-svc/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index", "menu", "order", "payment", "success"}

type pageData struct {
	Title   string
	Flashes []Flash
	Menu    domain.Menu
	Item    *domain.MenuItem
	Order   *domain.Order
	Payment *domain.Payment
}

// Renderer holds one template set per page, each layered on layout.html.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"rupiah":        Rupiah,
		"statusMessage": StatusMessage,
		"safeURL":       safeURL,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, page string, data pageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		http.Error(w, "page not found", http.StatusInternalServerError)
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, "Terjadi kesalahan pada server", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// safeURL passes qr_code data URIs through; html/template would otherwise drop them from src.
func safeURL(s string) template.URL {
	return template.URL(s)
}

// Rupiah formats an amount with dot thousand separators, e.g. "Rp 25.000".
func Rupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}
	return "Rp " + sign + string(out)
}
