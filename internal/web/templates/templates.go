// Package templates renders the shop's server-side HTML pages.
package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/shadowscrew/capeshop/internal/model"
)

//go:embed *.html
var templatesFS embed.FS

// Each page is parsed together with the layout so they can share the
// "layout" and per-page "content" definitions.
var (
	homeTmpl     = template.Must(template.ParseFS(templatesFS, "layout.html", "home.html"))
	loginTmpl    = template.Must(template.ParseFS(templatesFS, "layout.html", "login.html"))
	registerTmpl = template.Must(template.ParseFS(templatesFS, "layout.html", "register.html"))
)

// Flash is a one-shot status message carried across a redirect
type Flash struct {
	Type    string // "success", "error", or "info"
	Message string
}

// PageData carries fields common to every page
type PageData struct {
	Title string
	User  *model.User
	Flash *Flash
}

// HomeData is the storefront page payload
type HomeData struct {
	PageData
	Capes             []model.Cape
	Cart              *model.Cart
	Balance           int
	DiscordConfigured bool
}

// LoginData is the login page payload
type LoginData struct {
	PageData
	Username string
	Error    string
}

// RegisterData is the registration page payload
type RegisterData struct {
	PageData
	Username string
	Error    string
}

// Home renders the storefront page
func Home(w io.Writer, data HomeData) error {
	return homeTmpl.ExecuteTemplate(w, "layout", data)
}

// Login renders the login page
func Login(w io.Writer, data LoginData) error {
	return loginTmpl.ExecuteTemplate(w, "layout", data)
}

// Register renders the registration page
func Register(w io.Writer, data RegisterData) error {
	return registerTmpl.ExecuteTemplate(w, "layout", data)
}
