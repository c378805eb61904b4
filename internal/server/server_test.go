package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/internal/config"
	"github.com/kindredhq/kindred/internal/graph"
	"github.com/kindredhq/kindred/pkg/types"
	"github.com/kindredhq/kindred/web/handlers"
)

// fakeSource serves a scripted sequence of snapshots.
type fakeSource struct {
	snapshots []*graph.Snapshot
	loads     int
	err       error
}

func (f *fakeSource) Load(ctx context.Context) (*graph.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	idx := f.loads
	if idx >= len(f.snapshots) {
		idx = len(f.snapshots) - 1
	}
	f.loads++
	return f.snapshots[idx], nil
}

func (f *fakeSource) Close() error { return nil }

func snapshotWith(n int) *graph.Snapshot {
	b := graph.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddIndividual(&types.Individual{ID: fmt.Sprintf("p%d", i)})
	}
	return b.Build()
}

func TestNewApp_LoadsInitialSnapshot(t *testing.T) {
	src := &fakeSource{snapshots: []*graph.Snapshot{snapshotWith(3)}}

	app, err := NewApp(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, src.loads)
	assert.Equal(t, 3, app.Calculator().Accessor().Snapshot().IndividualCount())
}

func TestNewApp_SourceFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("source down")}

	_, err := NewApp(context.Background(), src)
	assert.Error(t, err)
}

// TestReload_SwapsCalculator: a reload must swap the calculator pointer
// while a previously captured calculator keeps its snapshot.
func TestReload_SwapsCalculator(t *testing.T) {
	src := &fakeSource{snapshots: []*graph.Snapshot{snapshotWith(2), snapshotWith(5)}}
	app, err := NewApp(context.Background(), src)
	require.NoError(t, err)

	before := app.Calculator()

	stats, err := app.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Individuals)

	after := app.Calculator()
	assert.NotSame(t, before, after)
	assert.Equal(t, 2, before.Accessor().Snapshot().IndividualCount())
	assert.Equal(t, 5, after.Accessor().Snapshot().IndividualCount())
}

func TestReload_NoSource(t *testing.T) {
	app := NewAppWithSnapshot(snapshotWith(4))

	stats, err := app.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Individuals)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:         0, // pick a free port
			Host:         "127.0.0.1",
			RateLimitRPS: 1000,
			RateBurst:    1000,
		},
		Features: config.FeaturesConfig{EnableWatch: true},
	}
}

func TestStart_ServesQueries(t *testing.T) {
	b := graph.NewBuilder()
	b.AddIndividual(&types.Individual{ID: "dad", Sex: types.SexMale})
	b.AddIndividual(&types.Individual{ID: "kid", Sex: types.SexFemale})
	b.AddFamilyUnit(&types.FamilyUnit{ID: "f1", Husband: "dad"})
	b.AddChild("f1", "kid")
	app := NewAppWithSnapshot(b.Build())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr, hub := Start(ctx, testConfig(), app)
	require.NotNil(t, hub)

	url := fmt.Sprintf("http://%s/api/relationship?from=kid&to=dad", addr)
	resp := getJSON(t, url)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	var body handlers.RelationshipResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Father", body.Relationship.Label)
}

func TestStart_HealthAndShutdown(t *testing.T) {
	app := NewAppWithSnapshot(snapshotWith(2))

	ctx, cancel := context.WithCancel(context.Background())
	addr, _ := Start(ctx, testConfig(), app)

	resp := getJSON(t, fmt.Sprintf("http://%s/api/health", addr))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	// After shutdown the listener must stop accepting requests.
	assert.Eventually(t, func() bool {
		_, err := http.Get(fmt.Sprintf("http://%s/api/health", addr))
		return err != nil
	}, 5*time.Second, 100*time.Millisecond)
}

func getJSON(t *testing.T, url string) *http.Response {
	t.Helper()
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get(url)
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	return resp
}
