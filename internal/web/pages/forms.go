package pages

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/gigfinder/gigfinder/internal/api/models"
)

// validateScript duplicates the gig form rules in the browser.
const validateScript = "/static/validate.js"

func problemList(problems []string) templ.Component {
	return component(func(h *htmlWriter) {
		if len(problems) == 0 {
			return
		}
		h.raw(`<ul class="errors">`)
		for _, p := range problems {
			h.raw(`<li>`)
			h.text(p)
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
}

// field renders a labelled input followed by the error slot used by the validation script.
func field(h *htmlWriter, typ, name, label, value string) {
	h.raw(`<label`)
	h.attr("for", name)
	h.raw(`>`, label, `</label><input`)
	h.attr("type", typ)
	h.attr("id", name)
	h.attr("name", name)
	h.attr("value", value)
	h.raw(`><span class="error"`)
	h.attr("id", name+"Error")
	h.raw(`></span>`)
}

func gigForm(action string, form models.GigForm, problems []string) templ.Component {
	return component(func(h *htmlWriter) {
		h.render(problemList(problems))
		h.raw(`<form id="gigForm" method="POST" novalidate`)
		h.url("action", action)
		h.raw(`>`)
		field(h, "text", "title", "Title", form.Title)
		h.raw(`<label for="description">Description</label><textarea id="description" name="description">`)
		h.text(form.Description)
		h.raw(`</textarea>`)
		field(h, "date", "date", "Date", form.Date)
		field(h, "text", "location", "Location", form.Location)
		h.raw(`<button type="submit">Save</button></form>`)
	})
}

// AddGig renders the empty or rejected add form.
func AddGig(p Page, form models.GigForm, problems []string) templ.Component {
	p.Title = "Add Gig"
	return view(p, gigForm("/add-gig", form, problems), validateScript)
}

// EditGig renders the edit form of gig id.
func EditGig(p Page, id uint, form models.GigForm, problems []string) templ.Component {
	p.Title = "Edit Gig"
	return view(p, gigForm(fmt.Sprintf("/edit-gig/%d", id), form, problems), validateScript)
}

type credentialsForm struct {
	action       string
	submit       string
	autocomplete string
	otherText    string
	otherLabel   string
	otherHref    string
}

func credentials(f credentialsForm, username, errMsg string) templ.Component {
	return component(func(h *htmlWriter) {
		if errMsg != "" {
			h.raw(`<p class="errors">`)
			h.text(errMsg)
			h.raw(`</p>`)
		}
		h.raw(`<form method="POST"`)
		h.url("action", f.action)
		h.raw(`><label for="username">Username</label><input type="text" id="username" name="username" autocomplete="username"`)
		h.attr("value", username)
		h.raw(`><label for="password">Password</label><input type="password" id="password" name="password"`)
		h.attr("autocomplete", f.autocomplete)
		h.raw(`><button type="submit">`)
		h.text(f.submit)
		h.raw(`</button></form><p>`)
		h.text(f.otherText)
		h.raw(` <a`)
		h.url("href", f.otherHref)
		h.raw(`>`)
		h.text(f.otherLabel)
		h.raw(`</a></p>`)
	})
}

// Login renders the login form.
func Login(p Page, username, errMsg string) templ.Component {
	p.Title = "Login"
	return view(p, credentials(credentialsForm{
		action:       "/login",
		submit:       "Login",
		autocomplete: "current-password",
		otherText:    "No account yet?",
		otherLabel:   "Sign up",
		otherHref:    "/signup",
	}, username, errMsg))
}

// Signup renders the signup form.
func Signup(p Page, username, errMsg string) templ.Component {
	p.Title = "Sign Up"
	return view(p, credentials(credentialsForm{
		action:       "/signup",
		submit:       "Sign Up",
		autocomplete: "new-password",
		otherText:    "Already registered?",
		otherLabel:   "Login",
		otherHref:    "/login",
	}, username, errMsg))
}
