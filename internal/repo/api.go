package repo

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaperMC/website/internal/config"
	"github.com/PaperMC/website/internal/metrics"
	"github.com/PaperMC/website/internal/model"
	"github.com/PaperMC/website/internal/pkg/errs"
	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	endpointProject = "project"
	endpointBuilds  = "builds"

	userAgent = "papermc-website"

	defaultTimeout = 10 * time.Second
)

// API reads project, version and build metadata from the downloads API.
type API struct {
	logger  *zap.Logger
	client  *fasthttp.Client
	base    string
	timeout time.Duration
}

func NewAPI(logger *zap.Logger, conf *config.Config) *API {
	timeout := conf.Upstream.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &API{
		logger: logger,
		client: &fasthttp.Client{
			Name:                     userAgent,
			NoDefaultUserAgentHeader: true,
			MaxIdleConnDuration:      time.Minute,
		},
		base:    strings.TrimRight(conf.Upstream.BaseURL, "/"),
		timeout: timeout,
	}
}

// GetProject fetches /v2/projects/{id}.
func (a *API) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var resp model.ProjectResponse
	if err := a.get(ctx, endpointProject, &resp, "v2", "projects", id); err != nil {
		return nil, errors.WithMessagef(err, "get project %s", id)
	}
	return resp.ToProject(), nil
}

// GetVersionBuilds fetches /v2/projects/{id}/versions/{version}/builds. The
// builds keep the order of the response.
func (a *API) GetVersionBuilds(ctx context.Context, id, version string) ([]model.Build, error) {
	var resp model.BuildsResponse
	if err := a.get(ctx, endpointBuilds, &resp, "v2", "projects", id, "versions", version, "builds"); err != nil {
		return nil, errors.WithMessagef(err, "get builds of %s %s", id, version)
	}
	return resp.Builds, nil
}

func (a *API) get(ctx context.Context, endpoint string, dest any, segments ...string) error {
	var (
		req   = fasthttp.AcquireRequest()
		resp  = fasthttp.AcquireResponse()
		start = time.Now()
	)
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(a.url(segments...))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	err := a.client.DoDeadline(req, resp, a.deadline(ctx))
	metrics.UpstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		return errs.ErrUpstreamUnavailable.Wrap(err)
	}

	switch code := resp.StatusCode(); code {
	case http.StatusOK:
	case http.StatusNotFound:
		metrics.UpstreamRequests.WithLabelValues(endpoint, metrics.OutcomeNotFound).Inc()
		if endpoint == endpointBuilds {
			return errs.ErrVersionNotFound.Wrap(upstreamError(resp))
		}
		return errs.ErrProjectNotFound.Wrap(upstreamError(resp))
	default:
		metrics.UpstreamRequests.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		a.logger.Warn("Unexpected downloads api status",
			zap.String("uri", string(req.RequestURI())),
			zap.Int("status_code", code),
		)
		return errs.ErrUpstreamUnavailable.Wrap(upstreamError(resp))
	}

	if err := sonic.Unmarshal(resp.Body(), dest); err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		return errs.ErrUpstreamUnavailable.Wrap(errors.WithMessage(err, "decode response"))
	}
	metrics.UpstreamRequests.WithLabelValues(endpoint, metrics.OutcomeOK).Inc()
	return nil
}

func (a *API) url(segments ...string) string {
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, a.base)
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return strings.Join(escaped, "/")
}

// deadline is the earlier of the context deadline and the configured timeout.
func (a *API) deadline(ctx context.Context) time.Time {
	d := time.Now().Add(a.timeout)
	if cd, ok := ctx.Deadline(); ok && cd.Before(d) {
		return cd
	}
	return d
}

func upstreamError(resp *fasthttp.Response) error {
	var body model.ErrorResponse
	if err := sonic.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return errors.Errorf("status %d: %s", resp.StatusCode(), body.Error)
	}
	return errors.Errorf("status %d", resp.StatusCode())
}
