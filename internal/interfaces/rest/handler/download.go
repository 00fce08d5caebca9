package handler

import (
	"github.com/PaperMC/website/internal/download"
	"github.com/PaperMC/website/internal/logic"
	"github.com/PaperMC/website/internal/model"
	"github.com/PaperMC/website/internal/pkg/restserver/response"
	"github.com/PaperMC/website/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DownloadHandler serves the latest build of a project as JSON for
// scripted consumers.
type DownloadHandler struct {
	logger       *zap.Logger
	releaseLogic *logic.ReleaseLogic
	resolver     *download.Resolver
}

func NewDownloadHandler(
	logger *zap.Logger,
	releaseLogic *logic.ReleaseLogic,
	resolver *download.Resolver,
) *DownloadHandler {
	return &DownloadHandler{
		logger:       logger,
		releaseLogic: releaseLogic,
		resolver:     resolver,
	}
}

func (h *DownloadHandler) Register(r fiber.Router) {
	api := r.Group("/api")
	api.Get("/projects/:project/latest", h.GetLatest)
}

func (h *DownloadHandler) GetLatest(c *fiber.Ctx) error {
	var req model.ProjectRequest
	if err := validator.ValidateParams(c, &req); err != nil {
		return err
	}

	dc, err := h.releaseLogic.LoadDownloadContext(c.UserContext(), req.Project)
	if err != nil {
		return err
	}
	latest, _ := dc.LatestBuild()

	data := &model.LatestBuildResponseData{
		ProjectID:    dc.Project.ID,
		ProjectName:  dc.Project.Name,
		Version:      dc.Project.LatestVersion,
		VersionGroup: dc.Project.LatestVersionGroup,
		Build:        latest.Build,
		Channel:      latest.Channel,
		Time:         latest.Time,
		Downloads:    make([]*model.ArtifactResponseItem, 0, len(latest.Downloads)),
	}
	for _, kind := range download.OrderKinds(latest.Downloads) {
		d := latest.Downloads[kind]
		u, err := h.resolver.Resolve(req.Project, dc.Project.LatestVersion, latest.Build, d.Name)
		if err != nil {
			h.logger.Warn("Artifact left out of the latest build",
				zap.String("project", req.Project),
				zap.String("kind", kind),
				zap.Error(err),
			)
			continue
		}
		data.Downloads = append(data.Downloads, &model.ArtifactResponseItem{
			Kind:        kind,
			Name:        d.Name,
			SHA256:      d.SHA256,
			URL:         u,
			Recommended: kind == model.PrimaryDownloadKind,
		})
	}

	return c.JSON(response.Success(data))
}
