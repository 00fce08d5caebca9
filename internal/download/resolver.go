package download

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PaperMC/website/internal/pkg/errs"
	"github.com/pkg/errors"
)

// Resolver builds artifact download URLs against the downloads API.
type Resolver struct {
	base string
}

func NewResolver(base string) (*Resolver, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.WithMessage(err, "parse downloads api base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("downloads api base url %q is not absolute", base)
	}
	return &Resolver{base: strings.TrimRight(base, "/")}, nil
}

// Resolve returns
//
//	{base}/v2/projects/{projectID}/versions/{version}/builds/{build}/downloads/{name}
//
// It performs no I/O and does not check that the artifact exists. Every
// argument is required; a missing one is reported instead of producing a
// broken link.
func (r *Resolver) Resolve(projectID, version string, build int, name string) (string, error) {
	switch {
	case projectID == "":
		return "", missing("project id")
	case version == "":
		return "", missing("version")
	case build <= 0:
		return "", missing("build")
	case name == "":
		return "", missing("artifact name")
	}

	return strings.Join([]string{
		r.base,
		"v2", "projects", url.PathEscape(projectID),
		"versions", url.PathEscape(version),
		"builds", strconv.Itoa(build),
		"downloads", url.PathEscape(name),
	}, "/"), nil
}

func missing(arg string) error {
	return errs.ErrResolverMissingArgument.WithDetails(arg)
}
