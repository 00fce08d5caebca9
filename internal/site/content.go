package site

import (
	_ "embed"

	"github.com/PaperMC/website/internal/pkg/errs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type Link struct {
	Label    string `yaml:"label"`
	Href     string `yaml:"href"`
	External bool   `yaml:"external"`
}

type LinkGroup struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

type Feature struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// Software describes the marketing page of one project.
type Software struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Tagline     string    `yaml:"tagline"`
	Summary     string    `yaml:"summary"`
	Description string    `yaml:"description"`
	Keywords    []string  `yaml:"keywords"`
	Features    []Feature `yaml:"features"`
}

// Content is the static copy of the website.
type Content struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Keywords    []string    `yaml:"keywords"`
	Navigation  []Link      `yaml:"navigation"`
	Footer      []LinkGroup `yaml:"footer"`
	Software    []Software  `yaml:"software"`

	byID map[string]*Software
}

func Default() (*Content, error) {
	return Parse(defaultContent)
}

func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.WithMessage(err, "parse site content")
	}

	c.byID = make(map[string]*Software, len(c.Software))
	for i := range c.Software {
		s := &c.Software[i]
		if s.ID == "" || s.Name == "" {
			return nil, errors.Errorf("software entry %d needs an id and a name", i)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, errors.Errorf("duplicate software id %q", s.ID)
		}
		c.byID[s.ID] = s
	}
	return &c, nil
}

func (c *Content) Lookup(id string) (*Software, error) {
	s, ok := c.byID[id]
	if !ok {
		return nil, errs.ErrProjectNotFound.WithDetails(id)
	}
	return s, nil
}

// SoftwareIDs lists the software ids in page order.
func (c *Content) SoftwareIDs() []string {
	ids := make([]string, 0, len(c.Software))
	for _, s := range c.Software {
		ids = append(ids, s.ID)
	}
	return ids
}
