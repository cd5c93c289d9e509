// Package pages renders the HTML views of the site as templ components.
package pages

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/mergestat/timediff"
)

const siteName = "Concert &amp; Gig Finder"

// Page is the data every view receives.
type Page struct {
	Title string
	User  *models.User
	Flash string
}

// htmlWriter writes markup for a component and keeps the first write error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

// component builds a templ.Component from a function writing markup.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes escaped text content.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes a URL attribute, sanitized by templ before escaping.
func (h *htmlWriter) url(name, u string) {
	h.attr(name, string(templ.URL(u)))
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// view renders content inside the site layout.
func view(p Page, content templ.Component, scripts ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout(p, scripts...).Render(templ.WithChildren(ctx, content), w)
	})
}

func layout(p Page, scripts ...string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head>`,
			`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(p.Title)
		h.raw(` | `, siteName, `</title><link rel="stylesheet" href="/static/style.css"></head><body>`)
		h.render(nav(p.User))
		h.raw(`<main>`)
		if p.Flash != "" {
			h.raw(`<div class="flash" role="status">`)
			h.text(p.Flash)
			h.raw(`</div>`)
		}
		h.raw(`<h1>`)
		h.text(p.Title)
		h.raw(`</h1>`)
		h.render(templ.GetChildren(h.ctx))
		h.raw(`</main>`)
		for _, src := range scripts {
			h.raw(`<script`)
			h.url("src", src)
			h.raw(`></script>`)
		}
		h.raw(`</body></html>`)
	})
}

func nav(user *models.User) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<nav><a href="/">Home</a><a href="/gigs">Gigs</a>`)
		if user == nil {
			h.raw(`<a href="/login">Login</a><a href="/signup">Sign Up</a></nav>`)
			return
		}
		h.raw(`<a href="/add-gig">Add Gig</a><a href="/my-gigs">My Gigs</a><a href="/my-rsvps">My RSVPs</a>`)
		if user.IsAdmin() {
			h.raw(`<a href="/admin">Admin</a>`)
		}
		h.raw(`<span class="whoami">`)
		h.text(user.Username)
		h.raw(`</span><a href="/logout">Logout</a></nav>`)
	})
}

func formatDate(t time.Time) string {
	return t.Format("Mon, Jan 2 2006")
}

// FormatRelativeDate describes a gig date relative to today, like "in 3 days".
func FormatRelativeDate(t time.Time) string {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case t.Equal(today):
		return "today"
	case t.Equal(today.AddDate(0, 0, 1)):
		return "tomorrow"
	}
	return timediff.TimeDiff(t, timediff.WithStartTime(today))
}
