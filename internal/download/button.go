package download

import (
	"errors"
	"fmt"
	"sort"

	"github.com/PaperMC/website/internal/model"
	"github.com/dustin/go-humanize"
	"github.com/juju/clock"
	pkgerrors "github.com/pkg/errors"
)

// Outbound download links open in a new browsing context without a referrer.
const (
	LinkTarget = "_blank"
	LinkRel    = "noreferrer"
)

// ArtifactRow is one entry of the alternate downloads menu.
type ArtifactRow struct {
	Kind        string
	Name        string
	URL         string
	SHA256      string
	Recommended bool
	Copied      bool
	Focused     bool
}

// ButtonView is the render model of a download button. When Loading is set
// no other field is populated and no link may be rendered.
type ButtonView struct {
	Loading   bool
	ProjectID string
	Title     string
	Subtitle  string
	BuiltAgo  string
	URL       string
	Target    string
	Rel       string
	MenuOpen  bool
	Rows      []ArtifactRow

	CopiedResetMillis int64
}

// Button presents the newest build of a project: a primary link to its
// recommended artifact and a menu of every artifact with its checksum.
type Button struct {
	dc        *model.DownloadContext
	tracker   *CopyTracker
	clock     clock.Clock
	menu      *Menu
	artifacts []artifact
	skipped   []error
}

type artifact struct {
	kind     string
	download model.Download
	url      string
}

// NewButton resolves the links of the latest build up front. An artifact
// whose link cannot be resolved is left out of the menu and reported by
// Skipped, the rest of the button still renders.
func NewButton(dc *model.DownloadContext, resolver *Resolver, tracker *CopyTracker, clk clock.Clock) *Button {
	if clk == nil {
		clk = clock.WallClock
	}
	if dc == nil {
		dc = &model.DownloadContext{}
	}
	b := &Button{
		dc:      dc,
		tracker: tracker,
		clock:   clk,
	}
	if latest, ok := b.latest(); ok {
		for _, kind := range OrderKinds(latest.Downloads) {
			d := latest.Downloads[kind]
			u, err := resolver.Resolve(dc.ProjectID, dc.Project.LatestVersion, latest.Build, d.Name)
			if err != nil {
				b.skipped = append(b.skipped, pkgerrors.WithMessagef(err, "artifact %q", kind))
				continue
			}
			b.artifacts = append(b.artifacts, artifact{kind: kind, download: d, url: u})
		}
	}
	b.menu = NewMenu(len(b.artifacts))
	return b
}

func (b *Button) Menu() *Menu {
	return b.menu
}

// Skipped reports the artifacts of the latest build that were left out of
// the button, nil when every artifact has a link.
func (b *Button) Skipped() error {
	return errors.Join(b.skipped...)
}

// CopyChecksum copies the checksum of the artifact of the given kind.
func (b *Button) CopyChecksum(kind string) error {
	for _, a := range b.artifacts {
		if a.kind == kind {
			return b.tracker.Copy(a.download.SHA256)
		}
	}
	return nil
}

// Close releases the pending copied-badge timer.
func (b *Button) Close() {
	b.tracker.Close()
}

func (b *Button) View() *ButtonView {
	latest, ok := b.latest()
	if !ok || len(b.artifacts) == 0 {
		return &ButtonView{Loading: true, ProjectID: b.dc.ProjectID}
	}

	var (
		project = b.dc.Project
		copied  = b.tracker.Copied()
		rows    = make([]ArtifactRow, 0, len(b.artifacts))
	)
	for i, a := range b.artifacts {
		rows = append(rows, ArtifactRow{
			Kind:        a.kind,
			Name:        a.download.Name,
			URL:         a.url,
			SHA256:      a.download.SHA256,
			Recommended: a.kind == model.PrimaryDownloadKind,
			Copied:      copied != "" && copied == a.download.SHA256,
			Focused:     b.menu.Focus() == i,
		})
	}

	v := &ButtonView{
		ProjectID: b.dc.ProjectID,
		Title:     fmt.Sprintf("%s %s", project.Name, project.LatestVersion),
		Subtitle:  fmt.Sprintf("Build #%d", latest.Build),
		URL:       rows[0].URL,
		Target:    LinkTarget,
		Rel:       LinkRel,
		MenuOpen:  b.menu.IsOpen(),
		Rows:      rows,

		CopiedResetMillis: CopiedResetDelay.Milliseconds(),
	}
	if !latest.Time.IsZero() {
		v.BuiltAgo = humanize.RelTime(latest.Time, b.clock.Now(), "ago", "from now")
	}
	return v
}

// latest guards every render path: without a project, its latest version
// and at least one build there is nothing to link to.
func (b *Button) latest() (*model.Build, bool) {
	if !b.dc.Loaded() || b.dc.Project.LatestVersion == "" {
		return nil, false
	}
	return b.dc.LatestBuild()
}

// OrderKinds puts the primary kind first, the rest alphabetically.
func OrderKinds(downloads map[string]model.Download) []string {
	kinds := make([]string, 0, len(downloads))
	for k := range downloads {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		pi, pj := kinds[i] == model.PrimaryDownloadKind, kinds[j] == model.PrimaryDownloadKind
		if pi != pj {
			return pi
		}
		return kinds[i] < kinds[j]
	})
	return kinds
}
