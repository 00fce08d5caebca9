package view

import (
	"time"

	"github.com/PaperMC/website/internal/download"
	"github.com/PaperMC/website/internal/site"
)

// Page names.
const (
	PageHome      = "pages/home"
	PageDownloads = "pages/downloads"
	PageSoftware  = "pages/software"
	PageError     = "pages/error"
)

// Page is the data every template renders from.
type Page struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Year        int

	Site *site.Content

	// software and download pages
	Software     *site.Software
	VersionGroup string
	Button       *download.ButtonView
	ShowFeatures bool

	// downloads index
	Projects []ProjectCard

	// error page
	ErrorStatus  int
	ErrorMessage string
}

type ProjectCard struct {
	Software      *site.Software
	LatestVersion string
}

func NewPage(content *site.Content, title, description string) *Page {
	return &Page{
		Title:       title,
		Description: description,
		Keywords:    content.Keywords,
		Year:        time.Now().Year(),
		Site:        content,
	}
}

func (p *Page) FullTitle() string {
	if p.Title == "" || p.Site == nil || p.Title == p.Site.Name {
		if p.Site != nil {
			return p.Site.Name
		}
		return p.Title
	}
	return p.Title + " | " + p.Site.Name
}
