package pages

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/database"
)

var roles = []database.Role{database.RoleUser, database.RoleAdmin}

func roleForm(u models.UserSummary) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form method="POST" class="inline"`)
		h.url("action", fmt.Sprintf("/admin/users/%d/role", u.ID))
		h.raw(`><select name="role">`)
		for _, r := range roles {
			h.raw(`<option`)
			h.attr("value", string(r))
			if u.Role == r {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(string(r))
			h.raw(`</option>`)
		}
		h.raw(`</select><button type="submit">Update</button></form>`)
	})
}

func usersTable(users []models.UserSummary) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section><h2>Users (`, strconv.Itoa(len(users)), `)</h2><table>`,
			`<thead><tr><th>ID</th><th>Username</th><th>Role</th><th>Joined</th><th></th></tr></thead><tbody>`)
		for _, u := range users {
			h.raw(`<tr><td>`, strconv.FormatUint(uint64(u.ID), 10), `</td><td>`)
			h.text(u.Username)
			h.raw(`</td><td>`)
			h.render(roleForm(u))
			h.raw(`</td><td>`)
			h.text(humanize.Time(u.CreatedAt))
			h.raw(`</td><td>`)
			h.render(postButton(fmt.Sprintf("/admin/users/%d/delete", u.ID), "Delete", "danger"))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)
	})
}

func gigsTable(gigs []models.Gig) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section><h2>Gigs (`, strconv.Itoa(len(gigs)), `)</h2><table>`,
			`<thead><tr><th>ID</th><th>Title</th><th>Date</th><th>Owner</th><th></th></tr></thead><tbody>`)
		for _, g := range gigs {
			h.raw(`<tr><td>`, strconv.FormatUint(uint64(g.ID), 10), `</td><td>`)
			h.text(g.Title)
			h.raw(`</td><td>`)
			h.text(formatDate(g.Date))
			h.raw(`</td><td>`, strconv.FormatUint(uint64(g.OwnerID), 10), `</td><td>`)
			h.render(postButton(fmt.Sprintf("/admin/gigs/%d/delete", g.ID), "Delete", "danger"))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)
	})
}

// Admin renders the admin dashboard.
func Admin(p Page, users []models.UserSummary, gigs []models.Gig) templ.Component {
	p.Title = "Admin Dashboard"
	return view(p, templ.Join(usersTable(users), gigsTable(gigs)))
}
