package controller

import (
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meadowhq/meadow/internal/database"
	"github.com/meadowhq/meadow/internal/logging"
	"github.com/meadowhq/meadow/internal/markdown"
	"github.com/meadowhq/meadow/internal/qr"
	"github.com/meadowhq/meadow/pkg/services"
	"github.com/meadowhq/meadow/ui"
	"go.uber.org/zap"
)

const recentLimit = 5

type Controller struct {
	srv   *services.DocumentService
	pages *ui.Pages
}

func NewController(srv *services.DocumentService, pages *ui.Pages) *Controller {
	return &Controller{srv: srv, pages: pages}
}

// Home serves the editor page. An optional content query parameter seeds
// the textarea, which is how the viewer page's edit link works.
func (c *Controller) Home(w http.ResponseWriter, r *http.Request) {
	data := ui.EditorData{Content: r.URL.Query().Get("content")}
	if err := c.pages.Editor(w, data); err != nil {
		c.serverError(w, r, err)
	}
}

// Preview renders the submitted markdown and swaps it in place of the
// editor textarea. The source travels along in a hidden input so the edit
// button can restore it.
func (c *Controller) Preview(w http.ResponseWriter, r *http.Request) {
	content := formContent(r)
	fragment := markdown.ToHTML(markdown.Sanitize(content))

	data := ui.PreviewData{
		Content:  content,
		Fragment: template.HTML(fragment),
	}
	if err := c.pages.Preview(w, data); err != nil {
		c.serverError(w, r, err)
	}
}

// Edit swaps the preview back to a textarea holding the original source.
func (c *Controller) Edit(w http.ResponseWriter, r *http.Request) {
	if err := c.pages.Edit(w, ui.EditData{Content: formContent(r)}); err != nil {
		c.serverError(w, r, err)
	}
}

// Share persists the document and tells htmx to redirect to its view page.
func (c *Controller) Share(w http.ResponseWriter, r *http.Request) {
	doc, err := c.srv.Create(r.Context(), formContent(r), time.Now().UTC())
	if err != nil {
		c.serverError(w, r, err)
		return
	}

	w.Header().Set("HX-Redirect", "/view/"+doc.ID)
	w.Write([]byte("Redirecting..."))
}

// View renders a shared document, or the not-found page when the id is
// unknown or the document has expired.
func (c *Controller) View(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := c.srv.GetActive(r.Context(), id, time.Now().UTC())
	if err != nil {
		if database.IsRecordNotFoundErr(err) {
			c.notFound(w, r, "This document doesn't exist or has expired.")
			return
		}
		c.serverError(w, r, err)
		return
	}

	fragment := markdown.ToHTML(doc.Content)

	data := ui.ViewerData{
		Title:     markdown.ExtractTitle(fragment),
		Fragment:  template.HTML(fragment),
		Content:   doc.Content,
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt,
	}

	if uri, err := qr.DataURI(shareURL(r, doc.ID)); err == nil {
		data.QR = template.URL(uri)
	} else {
		logging.FromContext(r.Context()).Warn("failed to generate qr code", zap.Error(err))
	}

	if err := c.pages.Viewer(w, data); err != nil {
		c.serverError(w, r, err)
	}
}

// Recent lists the latest submissions, expired ones included.
func (c *Controller) Recent(w http.ResponseWriter, r *http.Request) {
	docs, err := c.srv.Recent(r.Context(), recentLimit)
	if err != nil {
		c.serverError(w, r, err)
		return
	}

	data := ui.RecentData{Title: "recent"}
	for _, doc := range docs {
		data.Documents = append(data.Documents, ui.RecentItem{
			ID:        doc.ID,
			Content:   doc.Content,
			CreatedAt: doc.CreatedAt,
			ExpiresAt: doc.ExpiresAt,
		})
	}

	if err := c.pages.Recent(w, data); err != nil {
		c.serverError(w, r, err)
	}
}

func (c *Controller) NotFound(w http.ResponseWriter, r *http.Request) {
	c.notFound(w, r, "")
}

func (c *Controller) notFound(w http.ResponseWriter, r *http.Request, message string) {
	w.WriteHeader(http.StatusNotFound)
	if err := c.pages.NotFound(w, ui.NotFoundData{Message: message}); err != nil {
		logging.FromContext(r.Context()).Error("failed to render page", zap.Error(err))
	}
}

func (c *Controller) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("request failed",
		zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// formContent reads the content form field, treating absent or malformed
// payloads as empty input.
func formContent(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}
	return r.FormValue("content")
}

func shareURL(r *http.Request, id string) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/view/" + id
}
