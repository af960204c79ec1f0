// Package ui assembles full HTML pages and htmx fragments from rendered
// markdown and document metadata.
package ui

import (
	"embed"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

type Pages struct {
	t *template.Template
}

func NewPages() (*Pages, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Pages{t: t}, nil
}

type EditorData struct {
	Title   string
	Content string
}

type PreviewData struct {
	Content  string
	Fragment template.HTML
}

type EditData struct {
	Content string
}

type ViewerData struct {
	Title     string
	Fragment  template.HTML
	Content   string
	ID        string
	CreatedAt time.Time
	QR        template.URL
}

type NotFoundData struct {
	Title   string
	Message string
}

type RecentItem struct {
	ID        string
	Content   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type RecentData struct {
	Title     string
	Documents []RecentItem
}

func (p *Pages) Editor(w io.Writer, data EditorData) error {
	return p.t.ExecuteTemplate(w, "editor.html", data)
}

func (p *Pages) Preview(w io.Writer, data PreviewData) error {
	return p.t.ExecuteTemplate(w, "preview.html", data)
}

func (p *Pages) Edit(w io.Writer, data EditData) error {
	return p.t.ExecuteTemplate(w, "edit.html", data)
}

func (p *Pages) Viewer(w io.Writer, data ViewerData) error {
	return p.t.ExecuteTemplate(w, "viewer.html", data)
}

func (p *Pages) NotFound(w io.Writer, data NotFoundData) error {
	if data.Title == "" {
		data.Title = "404"
	}
	if data.Message == "" {
		data.Message = "The page you're looking for doesn't exist."
	}
	return p.t.ExecuteTemplate(w, "notfound.html", data)
}

func (p *Pages) Recent(w io.Writer, data RecentData) error {
	return p.t.ExecuteTemplate(w, "recent.html", data)
}
