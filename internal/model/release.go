package model

import "time"

// PrimaryDownloadKind is the artifact kind offered as the recommended
// download of a build.
const PrimaryDownloadKind = "application"

type Project struct {
	ID                 string
	Name               string
	LatestVersion      string
	LatestVersionGroup string
	VersionGroups      []string
	Versions           []string
}

// Download is a single artifact of a build.
type Download struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
}

type Change struct {
	Commit  string `json:"commit"`
	Summary string `json:"summary"`
	Message string `json:"message"`
}

// Build is one numbered build of a project version. Downloads is keyed by
// artifact kind.
type Build struct {
	Build     int                 `json:"build"`
	Version   string              `json:"version,omitempty"`
	Time      time.Time           `json:"time"`
	Channel   string              `json:"channel"`
	Promoted  bool                `json:"promoted"`
	Changes   []Change            `json:"changes"`
	Downloads map[string]Download `json:"downloads"`
}

// DownloadContext is the release data a page renders from. Project and
// Builds stay nil until the upstream fetch succeeds.
type DownloadContext struct {
	ProjectID string
	Project   *Project
	Builds    []Build
}

func NewDownloadContext(projectID string) *DownloadContext {
	return &DownloadContext{ProjectID: projectID}
}

// Loaded reports whether the context holds a project and at least one build.
func (c *DownloadContext) Loaded() bool {
	return c != nil && c.Project != nil && len(c.Builds) > 0
}

// LatestBuild returns the last build of the sequence. The upstream order is
// trusted, the builds are never re-sorted.
func (c *DownloadContext) LatestBuild() (*Build, bool) {
	if c == nil || len(c.Builds) == 0 {
		return nil, false
	}
	return &c.Builds[len(c.Builds)-1], true
}
