package logic

import (
	"context"
	"sync/atomic"

	"github.com/PaperMC/website/internal/cache"
	"github.com/PaperMC/website/internal/config"
	"github.com/PaperMC/website/internal/model"
	"github.com/PaperMC/website/internal/pkg/errs"
	"github.com/PaperMC/website/internal/pkg/filehash"
	"github.com/PaperMC/website/internal/vercomp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ReleaseSource is the upstream metadata API.
type ReleaseSource interface {
	GetProject(ctx context.Context, id string) (*model.Project, error)
	GetVersionBuilds(ctx context.Context, id, version string) ([]model.Build, error)
}

type ReleaseLogic struct {
	logger        *zap.Logger
	source        ReleaseSource
	cg            *cache.ReleaseCacheGroup
	verComparator *vercomp.VersionComparator
	verifyOrder   atomic.Bool
}

func NewReleaseLogic(
	logger *zap.Logger,
	conf *config.Config,
	source ReleaseSource,
	cg *cache.ReleaseCacheGroup,
	verComparator *vercomp.VersionComparator,
) *ReleaseLogic {
	l := &ReleaseLogic{
		logger:        logger,
		source:        source,
		cg:            cg,
		verComparator: verComparator,
	}
	l.verifyOrder.Store(conf.Site.VerifyBuildOrder)

	config.RegisterKeyListener(config.KeyListener{
		Key:      config.SiteVerifyOrderKey,
		Listener: l.onVerifyOrderChange,
	})
	return l
}

func (l *ReleaseLogic) onVerifyOrderChange(v any) {
	enabled, ok := v.(bool)
	if !ok {
		return
	}
	l.verifyOrder.Store(enabled)
	l.logger.Info("Release order checks updated", zap.Bool("enabled", enabled))
}

// LoadDownloadContext fetches the project and the builds of its latest
// version. On failure the returned context is still usable: its Project and
// Builds fields are left nil so pages render their loading state.
func (l *ReleaseLogic) LoadDownloadContext(ctx context.Context, projectID string) (*model.DownloadContext, error) {
	dc := model.NewDownloadContext(projectID)

	project, err := l.GetProject(ctx, projectID)
	if err != nil {
		return dc, err
	}
	if project.LatestVersion == "" {
		return dc, errs.ErrNoBuildsAvailable.WithDetails(projectID)
	}

	builds, err := l.GetBuilds(ctx, projectID, project.LatestVersion)
	if err != nil {
		return dc, err
	}
	if len(builds) == 0 {
		return dc, errs.ErrNoBuildsAvailable.WithDetails(projectID)
	}

	dc.Project = project
	dc.Builds = builds
	return dc, nil
}

func (l *ReleaseLogic) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	return l.cg.ProjectCache.ComputeIfAbsent(projectID, func() (*model.Project, error) {
		p, err := l.source.GetProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		l.checkVersionOrder(p)
		return p, nil
	})
}

func (l *ReleaseLogic) GetBuilds(ctx context.Context, projectID, version string) ([]model.Build, error) {
	key := l.cg.GetCacheKey(projectID, version)
	return l.cg.BuildsCache.ComputeIfAbsent(key, func() ([]model.Build, error) {
		builds, err := l.source.GetVersionBuilds(ctx, projectID, version)
		if err != nil {
			return nil, err
		}
		l.checkBuildOrder(projectID, version, builds)
		l.checkChecksums(projectID, version, builds)
		return builds, nil
	})
}

// LoadProjects fetches several projects concurrently. A project that fails
// to load is logged and left nil in the result.
func (l *ReleaseLogic) LoadProjects(ctx context.Context, ids []string) map[string]*model.Project {
	var (
		projects = make([]*model.Project, len(ids))
		g, gctx  = errgroup.WithContext(ctx)
	)
	for i, id := range ids {
		g.Go(func() error {
			p, err := l.GetProject(gctx, id)
			if err != nil {
				l.logger.Warn("Failed to load project",
					zap.String("project", id),
					zap.Error(err),
				)
				return nil
			}
			projects[i] = p
			return nil
		})
	}
	_ = g.Wait()

	ret := make(map[string]*model.Project, len(ids))
	for i, id := range ids {
		ret[id] = projects[i]
	}
	return ret
}

// The latest build is the last one returned by the API. That order is
// trusted, a build sequence that is not ascending is only reported.
func (l *ReleaseLogic) checkBuildOrder(projectID, version string, builds []model.Build) {
	if !l.verifyOrder.Load() {
		return
	}
	for i := 1; i < len(builds); i++ {
		if builds[i].Build <= builds[i-1].Build {
			l.logger.Warn("Builds are not in ascending order, the last one is still treated as latest",
				zap.String("project", projectID),
				zap.String("version", version),
				zap.Int("previous_build", builds[i-1].Build),
				zap.Int("build", builds[i].Build),
				zap.Int("latest_build", builds[len(builds)-1].Build),
			)
			return
		}
	}
}

func (l *ReleaseLogic) checkVersionOrder(p *model.Project) {
	if !l.verifyOrder.Load() {
		return
	}
	if i := l.verComparator.FirstOutOfOrder(p.Versions); i > 0 {
		l.logger.Warn("Versions are not in ascending order, the last one is still treated as latest",
			zap.String("project", p.ID),
			zap.String("previous_version", p.Versions[i-1]),
			zap.String("version", p.Versions[i]),
			zap.String("latest_version", p.LatestVersion),
		)
	}
}

// checkChecksums reports artifacts of the latest build whose checksum is not
// a SHA-256 digest. They are still offered, the copy control copies
// whatever the API returned.
func (l *ReleaseLogic) checkChecksums(projectID, version string, builds []model.Build) {
	if len(builds) == 0 {
		return
	}
	latest := builds[len(builds)-1]
	for kind, d := range latest.Downloads {
		if !filehash.Valid(d.SHA256) {
			l.logger.Warn("Artifact checksum is not a SHA-256 digest",
				zap.String("project", projectID),
				zap.String("version", version),
				zap.Int("build", latest.Build),
				zap.String("kind", kind),
				zap.String("sha256", d.SHA256),
			)
		}
	}
}
