package model

import "time"

type ArtifactResponseItem struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	SHA256      string `json:"sha256"`
	URL         string `json:"url"`
	Recommended bool   `json:"recommended"`
}

type LatestBuildResponseData struct {
	ProjectID    string                  `json:"project_id"`
	ProjectName  string                  `json:"project_name"`
	Version      string                  `json:"version"`
	VersionGroup string                  `json:"version_group"`
	Build        int                     `json:"build"`
	Channel      string                  `json:"channel"`
	Time         time.Time               `json:"time"`
	Downloads    []*ArtifactResponseItem `json:"downloads"`
}
