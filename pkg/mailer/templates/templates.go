package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	"io"
	"strings"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// EmailData defines standard fields for email templates.
type EmailData struct {
	// Basic info
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Username string `json:"Username"`
	Role     string `json:"Role"`

	// Company info
	CompanyName    string `json:"CompanyName"`
	CompanyAddress string `json:"CompanyAddress"`
	AppName        string `json:"AppName"`
	LogoURL        string `json:"LogoURL"`
	SupportURL     string `json:"SupportURL"`

	// Order details
	OrderID         string `json:"OrderID"`
	ArtworkTitle    string `json:"ArtworkTitle"`
	Amount          string `json:"Amount"`
	ShippingAddress string `json:"ShippingAddress"`
	TransactionID   string `json:"TransactionID"`

	Time   string    `json:"Time"`
	TimeAt time.Time `json:"TimeAt"`
}

// ToMap converts EmailData to the map carried in EmailJob.Data.
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

const (
	OrderConfirmation = "order_confirmation"
	Welcome           = "welcome"
)

// set is one email: a one-line subject plus text and html bodies.
type set struct {
	subject *texttpl.Template
	text    *texttpl.Template
	html    *htmpl.Template
}

var sets = mustParse(OrderConfirmation, Welcome)

// defaultFn backs {{ .Value | default "Fallback" }}. Missing map keys arrive
// as nil and blank strings count as missing.
func defaultFn(fallback, value any) any {
	switch v := value.(type) {
	case nil:
		return fallback
	case string:
		if strings.TrimSpace(v) == "" {
			return fallback
		}
	}
	return value
}

func mustParse(names ...string) map[string]set {
	funcs := map[string]any{"default": defaultFn}
	out := make(map[string]set, len(names))
	for _, name := range names {
		out[name] = set{
			subject: texttpl.Must(texttpl.New(name+".subject.tmpl").Funcs(funcs).ParseFS(FS, name+".subject.tmpl")),
			text:    texttpl.Must(texttpl.New(name+".text.tmpl").Funcs(funcs).ParseFS(FS, name+".text.tmpl")),
			html:    htmpl.Must(htmpl.New(name+".html.tmpl").Funcs(funcs).ParseFS(FS, name+".html.tmpl")),
		}
	}
	return out
}

// Known reports whether name has embedded subject, text and html templates.
func Known(name string) bool {
	_, ok := sets[name]
	return ok
}

type executor interface {
	Execute(w io.Writer, data any) error
}

func execute(t executor, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render produces the subject, text and html bodies of the named email.
func Render(name string, data any) (subject, text, html string, err error) {
	s, ok := sets[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
	if subject, err = execute(s.subject, data); err != nil {
		return "", "", "", fmt.Errorf("render %s subject: %w", name, err)
	}
	if text, err = execute(s.text, data); err != nil {
		return "", "", "", fmt.Errorf("render %s text: %w", name, err)
	}
	if html, err = execute(s.html, data); err != nil {
		return "", "", "", fmt.Errorf("render %s html: %w", name, err)
	}
	return strings.TrimSpace(subject), text, html, nil
}
