package provider

import (
	"github.com/PaperMC/website/internal/repo"
	"github.com/google/wire"
)

var RepoSet = wire.NewSet(
	repo.NewAPI,
	repo.NewVisitors,
)
