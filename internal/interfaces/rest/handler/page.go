package handler

import (
	"context"
	"strings"

	"github.com/PaperMC/website/internal/config"
	"github.com/PaperMC/website/internal/download"
	"github.com/PaperMC/website/internal/logic"
	"github.com/PaperMC/website/internal/metrics"
	"github.com/PaperMC/website/internal/model"
	"github.com/PaperMC/website/internal/pkg/validator"
	"github.com/PaperMC/website/internal/repo"
	"github.com/PaperMC/website/internal/site"
	"github.com/PaperMC/website/internal/view"
	"github.com/gofiber/fiber/v2"
	"github.com/juju/clock"
	"go.uber.org/zap"
)

const variantsOpen = "open"

// page_renders_total labels
const (
	pageLabelHome      = "home"
	pageLabelDownloads = "downloads"
	pageLabelSoftware  = "software"
	pageLabelDownload  = "download"
)

type PageHandler struct {
	logger       *zap.Logger
	content      *site.Content
	releaseLogic *logic.ReleaseLogic
	resolver     *download.Resolver
	clock        clock.Clock
	baseURL      string
	visitors     *repo.Visitors
}

func NewPageHandler(
	logger *zap.Logger,
	conf *config.Config,
	content *site.Content,
	releaseLogic *logic.ReleaseLogic,
	resolver *download.Resolver,
	clk clock.Clock,
	visitors *repo.Visitors,
) *PageHandler {
	return &PageHandler{
		logger:       logger,
		content:      content,
		releaseLogic: releaseLogic,
		resolver:     resolver,
		clock:        clk,
		baseURL:      strings.TrimSuffix(conf.Site.BaseURL, "/"),
		visitors:     visitors,
	}
}

func (h *PageHandler) Register(r fiber.Router) {
	r.Get("/", h.Home)
	r.Get("/downloads", h.Downloads)
	r.Get("/downloads/:project", h.Download)
	r.Get("/software/:project", h.Software)
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	p := h.newPage(c, h.content.Name, h.content.Description)
	metrics.PageRenders.WithLabelValues(pageLabelHome, metrics.StateLoaded).Inc()
	return c.Render(view.PageHome, p)
}

func (h *PageHandler) Downloads(c *fiber.Ctx) error {
	ids := h.content.SoftwareIDs()
	projects := h.releaseLogic.LoadProjects(c.UserContext(), ids)

	var (
		cards = make([]view.ProjectCard, 0, len(ids))
		state = metrics.StateLoaded
	)
	for i := range h.content.Software {
		s := &h.content.Software[i]
		card := view.ProjectCard{Software: s}
		if project := projects[s.ID]; project != nil {
			card.LatestVersion = project.LatestVersion
		} else {
			state = metrics.StateLoading
		}
		cards = append(cards, card)
	}

	p := h.newPage(c, "Downloads", "Download the latest builds of "+h.content.Name+" software.")
	p.Projects = cards
	metrics.PageRenders.WithLabelValues(pageLabelDownloads, state).Inc()
	return c.Render(view.PageDownloads, p)
}

// Software renders the marketing page of a project, download button
// included.
func (h *PageHandler) Software(c *fiber.Ctx) error {
	return h.renderSoftware(c, true)
}

// Download renders the download page of a project: the same header and
// button without the feature cards.
func (h *PageHandler) Download(c *fiber.Ctx) error {
	return h.renderSoftware(c, false)
}

func (h *PageHandler) renderSoftware(c *fiber.Ctx, features bool) error {
	var req model.ProjectRequest
	if err := validator.ValidateParams(c, &req); err != nil {
		return err
	}
	var query model.PageQuery
	if err := validator.ValidateQuery(c, &query); err != nil {
		return err
	}

	software, err := h.content.Lookup(req.Project)
	if err != nil {
		return err
	}
	if !features {
		h.visitors.Record(software.ID, c.IP())
	}

	dc := h.loadDownloadContext(c.UserContext(), req.Project)

	// the clipboard lives in the browser, the tracker only carries the
	// reset delay to the page
	tracker := download.NewCopyTracker(h.logger, h.clock, nil)
	button := download.NewButton(dc, h.resolver, tracker, h.clock)
	defer button.Close()

	if query.Variants == variantsOpen {
		button.Menu().Toggle()
	}

	if err := button.Skipped(); err != nil {
		h.logger.Warn("Artifacts left out of the download button",
			zap.String("project", req.Project),
			zap.Error(err),
		)
	}
	bv := button.View()

	p := h.newPage(c, software.Name, software.Summary)
	p.Keywords = append(append([]string{}, h.content.Keywords...), software.Keywords...)
	p.Software = software
	p.ShowFeatures = features
	p.Button = bv
	if dc.Project != nil {
		p.VersionGroup = dc.Project.LatestVersionGroup
	}

	label := pageLabelSoftware
	if !features {
		label = pageLabelDownload
	}
	state := metrics.StateLoaded
	if bv.Loading {
		state = metrics.StateLoading
	}
	metrics.PageRenders.WithLabelValues(label, state).Inc()

	return c.Render(view.PageSoftware, p)
}

// loadDownloadContext never fails: an unavailable upstream leaves the
// context empty and the page shows its loading state.
func (h *PageHandler) loadDownloadContext(ctx context.Context, projectID string) *model.DownloadContext {
	dc, err := h.releaseLogic.LoadDownloadContext(ctx, projectID)
	if err != nil {
		h.logger.Warn("Failed to load release data",
			zap.String("project", projectID),
			zap.Error(err),
		)
	}
	if dc == nil {
		dc = model.NewDownloadContext(projectID)
	}
	return dc
}

func (h *PageHandler) newPage(c *fiber.Ctx, title, description string) *view.Page {
	p := view.NewPage(h.content, title, description)
	if h.baseURL != "" {
		p.Canonical = h.baseURL + c.Path()
	}
	return p
}
