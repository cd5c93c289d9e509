package pages

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/gigfinder/gigfinder/internal/api/models"
)

// gigActions renders the buttons below a gig.
type gigActions func(g models.Gig) templ.Component

// gigList renders gigs, or empty when there are none.
func gigList(gigs []models.Gig, actions gigActions, empty templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		if len(gigs) == 0 {
			h.render(empty)
			return
		}
		h.raw(`<ul class="gigs">`)
		for _, g := range gigs {
			h.raw(`<li class="gig"><h2>`)
			h.text(g.Title)
			h.raw(`</h2><p class="when"><time`)
			h.attr("datetime", g.Date.Format(models.DateLayout))
			h.raw(`>`)
			h.text(formatDate(g.Date))
			h.raw(`</time> <span class="relative">(`)
			h.text(FormatRelativeDate(g.Date))
			h.raw(`)</span></p><p class="where">`)
			h.text(g.Location)
			h.raw(`</p>`)
			if g.Description != "" {
				h.raw(`<p>`)
				h.text(g.Description)
				h.raw(`</p>`)
			}
			if actions != nil {
				h.render(actions(g))
			}
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
}

func emptyNote(text, linkText, href string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<p class="empty">`)
		h.text(text)
		if href != "" {
			h.raw(` <a`)
			h.url("href", href)
			h.raw(`>`)
			h.text(linkText)
			h.raw(`</a>.`)
		}
		h.raw(`</p>`)
	})
}

// postButton renders a single-button form posting to action.
func postButton(action, label, class string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form method="POST" class="inline"`)
		h.url("action", action)
		h.raw(`><button type="submit"`)
		if class != "" {
			h.attr("class", class)
		}
		h.raw(`>`)
		h.text(label)
		h.raw(`</button></form>`)
	})
}

func ownerActions(g models.Gig) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<a`)
		h.url("href", fmt.Sprintf("/edit-gig/%d", g.ID))
		h.raw(`>Edit</a>`)
		h.render(postButton(fmt.Sprintf("/delete-gig/%d", g.ID), "Delete", "danger"))
	})
}

// Home renders the landing page with a few upcoming gigs.
func Home(p Page, upcoming []models.Gig) templ.Component {
	p.Title = "Concert & Gig Finder"
	return view(p, component(func(h *htmlWriter) {
		h.raw(`<p>Find concerts near you, add your own gigs and let others know you are coming.</p>`)
		if len(upcoming) > 0 {
			h.raw(`<h2>Coming up</h2>`)
			h.render(gigList(upcoming, nil, templ.NopComponent))
		}
		h.raw(`<p><a href="/gigs">Browse all gigs</a></p>`)
	}))
}

// Gigs renders the searchable list of all gigs.
func Gigs(p Page, gigs []models.Gig, query models.SearchQuery) templ.Component {
	p.Title = "All Gigs"

	var actions gigActions
	if p.User != nil {
		actions = func(g models.Gig) templ.Component {
			rsvp := postButton(fmt.Sprintf("/gigs/%d/rsvp", g.ID), "RSVP", "")
			if !g.CanEdit {
				return rsvp
			}
			return templ.Join(rsvp, ownerActions(g))
		}
	}

	return view(p, component(func(h *htmlWriter) {
		h.raw(`<form method="GET" action="/gigs" class="search">`,
			`<input type="text" name="search" placeholder="Search title or location"`)
		h.attr("value", query.Search)
		h.raw(`><label>From <input type="date" name="startDate"`)
		h.attr("value", query.StartDate)
		h.raw(`></label><label>To <input type="date" name="endDate"`)
		h.attr("value", query.EndDate)
		h.raw(`></label><button type="submit">Search</button></form>`)
		h.render(gigList(gigs, actions, emptyNote("No gigs found.", "", "")))
	}))
}

func MyGigs(p Page, gigs []models.Gig) templ.Component {
	p.Title = "My Gigs"
	return view(p, gigList(gigs, ownerActions, emptyNote("You have not added any gigs yet.", "Add one", "/add-gig")))
}

func MyRSVPs(p Page, gigs []models.Gig) templ.Component {
	p.Title = "My RSVPs"
	return view(p, gigList(gigs, nil, emptyNote("You have not RSVP'd to any gigs yet.", "Find one", "/gigs")))
}
