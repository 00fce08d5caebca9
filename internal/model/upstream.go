package model

// Response bodies of the downloads API (v2).

type ProjectResponse struct {
	ProjectID     string   `json:"project_id"`
	ProjectName   string   `json:"project_name"`
	VersionGroups []string `json:"version_groups"`
	Versions      []string `json:"versions"`
}

// ToProject takes the last version and version group as the latest ones,
// the API lists both in ascending order.
func (r *ProjectResponse) ToProject() *Project {
	p := &Project{
		ID:            r.ProjectID,
		Name:          r.ProjectName,
		VersionGroups: r.VersionGroups,
		Versions:      r.Versions,
	}
	if n := len(r.Versions); n > 0 {
		p.LatestVersion = r.Versions[n-1]
	}
	if n := len(r.VersionGroups); n > 0 {
		p.LatestVersionGroup = r.VersionGroups[n-1]
	}
	return p
}

type BuildsResponse struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Version     string  `json:"version"`
	Builds      []Build `json:"builds"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
