package download

import (
	"testing"
	"time"

	"github.com/PaperMC/website/internal/model"
	"github.com/PaperMC/website/internal/pkg/errs"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestButton(t *testing.T, dc *model.DownloadContext) (*Button, *testclock.Clock, *memClipboard) {
	r, err := NewResolver(testAPIBase)
	require.NoError(t, err)

	clk := testclock.NewClock(testNow)
	cb := &memClipboard{}
	b := NewButton(dc, r, NewCopyTracker(zap.NewNop(), clk, cb), clk)
	t.Cleanup(b.Close)
	return b, clk, cb
}

func paperContext() *model.DownloadContext {
	return &model.DownloadContext{
		ProjectID: "paper",
		Project: &model.Project{
			ID:                 "paper",
			Name:               "Paper",
			LatestVersion:      "1.20",
			LatestVersionGroup: "1.20",
		},
		Builds: []model.Build{
			{
				Build: 10,
				Time:  testNow.Add(-3 * 24 * time.Hour),
				Downloads: map[string]model.Download{
					"application": {Name: "paper-10.jar", SHA256: sumA},
				},
			},
		},
	}
}

func TestButtonEndToEnd(t *testing.T) {
	b, clk, cb := newTestButton(t, paperContext())

	v := b.View()
	require.False(t, v.Loading)
	require.Equal(t, "Paper 1.20", v.Title)
	require.Equal(t, "Build #10", v.Subtitle)
	require.Equal(t, "3 days ago", v.BuiltAgo)
	require.Equal(t, "https://api.papermc.io/v2/projects/paper/versions/1.20/builds/10/downloads/paper-10.jar", v.URL)
	require.Equal(t, "_blank", v.Target)
	require.Equal(t, "noreferrer", v.Rel)
	require.EqualValues(t, 2000, v.CopiedResetMillis)

	require.Len(t, v.Rows, 1)
	row := v.Rows[0]
	require.Equal(t, "paper-10.jar", row.Name)
	require.True(t, row.Recommended)
	require.False(t, row.Copied)
	require.Equal(t, sumA, row.SHA256)

	require.NoError(t, b.CopyChecksum("application"))
	require.Equal(t, sumA, cb.Text())

	v = b.View()
	require.True(t, v.Rows[0].Copied)

	clk.Advance(CopiedResetDelay)
	require.Eventually(t, func() bool {
		return !b.View().Rows[0].Copied
	}, time.Second, time.Millisecond)
}

func TestButtonSelectsLastBuild(t *testing.T) {
	dc := paperContext()
	dc.Builds = []model.Build{
		{Build: 99, Downloads: map[string]model.Download{"application": {Name: "paper-99.jar", SHA256: sumA}}},
		{Build: 5, Downloads: map[string]model.Download{"application": {Name: "paper-5.jar", SHA256: sumB}}},
	}
	b, _, _ := newTestButton(t, dc)

	v := b.View()
	require.Equal(t, "Build #5", v.Subtitle)
	require.Equal(t, "paper-5.jar", v.Rows[0].Name)
	require.Empty(t, v.BuiltAgo)
}

func TestButtonLoading(t *testing.T) {
	testCases := []struct {
		Name string
		DC   *model.DownloadContext
	}{
		{Name: "nil context", DC: nil},
		{Name: "nothing fetched", DC: model.NewDownloadContext("paper")},
		{Name: "no builds", DC: &model.DownloadContext{ProjectID: "paper", Project: &model.Project{Name: "Paper", LatestVersion: "1.20"}}},
		{Name: "empty builds", DC: &model.DownloadContext{ProjectID: "paper", Project: &model.Project{Name: "Paper", LatestVersion: "1.20"}, Builds: []model.Build{}}},
		{Name: "builds without project", DC: &model.DownloadContext{ProjectID: "paper", Builds: []model.Build{{Build: 1}}}},
		{Name: "no latest version", DC: &model.DownloadContext{ProjectID: "paper", Project: &model.Project{Name: "Paper"}, Builds: []model.Build{{Build: 1, Downloads: map[string]model.Download{"application": {Name: "a.jar"}}}}}},
		{Name: "build without downloads", DC: &model.DownloadContext{ProjectID: "paper", Project: &model.Project{Name: "Paper", LatestVersion: "1.20"}, Builds: []model.Build{{Build: 1}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			b, _, _ := newTestButton(t, tc.DC)
			v := b.View()
			require.True(t, v.Loading)
			require.Empty(t, v.URL)
			require.Empty(t, v.Rows)

			require.NoError(t, b.CopyChecksum("application"))
		})
	}
}

func TestButtonRowsAndCopiedBadge(t *testing.T) {
	dc := paperContext()
	dc.Project = &model.Project{ID: "velocity", Name: "Velocity", LatestVersion: "3.3.0-SNAPSHOT"}
	dc.ProjectID = "velocity"
	dc.Builds[0].Downloads = map[string]model.Download{
		"installer":   {Name: "velocity-installer.jar", SHA256: sumB},
		"application": {Name: "velocity-10.jar", SHA256: sumA},
	}
	b, clk, _ := newTestButton(t, dc)

	v := b.View()
	require.Len(t, v.Rows, 2)
	require.Equal(t, "application", v.Rows[0].Kind)
	require.True(t, v.Rows[0].Recommended)
	require.Equal(t, "installer", v.Rows[1].Kind)
	require.False(t, v.Rows[1].Recommended)
	require.Equal(t, v.Rows[0].URL, v.URL)

	require.NoError(t, b.CopyChecksum("installer"))
	v = b.View()
	require.False(t, v.Rows[0].Copied)
	require.True(t, v.Rows[1].Copied)

	require.NoError(t, clk.WaitAdvance(time.Second, time.Second, 1))
	require.NoError(t, b.CopyChecksum("application"))
	v = b.View()
	require.True(t, v.Rows[0].Copied)
	require.False(t, v.Rows[1].Copied)

	require.NoError(t, b.CopyChecksum("unknown"))
}

func TestButtonMenuState(t *testing.T) {
	b, _, _ := newTestButton(t, paperContext())

	v := b.View()
	require.False(t, v.MenuOpen)

	b.Menu().Key(KeyEnter)
	v = b.View()
	require.True(t, v.MenuOpen)
	require.True(t, v.Rows[0].Focused)
}

func TestButtonPrimaryFallsBackWithoutApplication(t *testing.T) {
	dc := paperContext()
	dc.Builds[0].Downloads = map[string]model.Download{
		"mojang-mappings": {Name: "paper-mojmap-10.jar", SHA256: sumB},
	}
	b, _, _ := newTestButton(t, dc)

	v := b.View()
	require.Contains(t, v.URL, "paper-mojmap-10.jar")
	require.False(t, v.Rows[0].Recommended)
}

func TestButtonSkipsUnresolvableArtifacts(t *testing.T) {
	dc := paperContext()
	dc.Builds[0].Downloads = map[string]model.Download{
		"application": {Name: "paper-10.jar", SHA256: sumA},
		"installer":   {Name: "", SHA256: sumB},
	}
	b, _, _ := newTestButton(t, dc)

	require.ErrorIs(t, b.Skipped(), errs.ErrResolverMissingArgument)
	v := b.View()
	require.False(t, v.Loading)
	require.Len(t, v.Rows, 1)
	require.Equal(t, "application", v.Rows[0].Kind)
	require.NoError(t, b.CopyChecksum("installer"))
}

func TestButtonLoadingWhenNoArtifactResolves(t *testing.T) {
	dc := paperContext()
	dc.Builds[0].Downloads = map[string]model.Download{
		"application": {Name: "", SHA256: sumA},
	}
	b, _, _ := newTestButton(t, dc)

	require.Error(t, b.Skipped())
	v := b.View()
	require.True(t, v.Loading)
	require.Empty(t, v.Rows)
}
