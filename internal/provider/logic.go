package provider

import (
	"github.com/PaperMC/website/internal/logic"
	"github.com/PaperMC/website/internal/repo"
	"github.com/google/wire"
)

var LogicSet = wire.NewSet(
	logic.NewReleaseLogic,
	wire.Bind(new(logic.ReleaseSource), new(*repo.API)),
)
