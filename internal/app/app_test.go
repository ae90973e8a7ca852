package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/adapters/host"
	"go.trai.ch/fresh/internal/app"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/fresh/internal/core/ports/mocks"
	"go.trai.ch/fresh/internal/engine/check"
	"go.trai.ch/fresh/internal/engine/lifecycle"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockManifestLoader
	log      *mocks.MockLogger
	registry *lifecycle.Registry
	hosts    *host.TableResolver
	app      *app.App
}

// newFixture builds an App whose checker sees only the given files.
func newFixture(t *testing.T, files map[string]time.Time) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockFS := mocks.NewMockFileSystem(ctrl)
	mockFS.EXPECT().ModTimeUTC(gomock.Any()).DoAndReturn(func(path string) (time.Time, bool) {
		at, ok := files[path]
		return at, ok
	}).AnyTimes()

	loader := mocks.NewMockManifestLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	registry := lifecycle.NewRegistry()
	hosts := host.NewTableResolver()

	return &fixture{
		loader:   loader,
		log:      log,
		registry: registry,
		hosts:    hosts,
		app:      app.New(loader, check.NewFactory(mockFS), registry, hosts, log),
	}
}

func snapshot(project string, inputs, outputs []string) domain.Snapshot {
	return domain.Snapshot{
		Project:       domain.NewInternedString(project),
		Configuration: domain.NewInternedString("Debug|AnyCPU"),
		Inputs:        domain.NewInternedStrings(inputs),
		Outputs:       domain.NewInternedStrings(outputs),
	}
}

func TestCheck_AllUpToDate(t *testing.T) {
	f := newFixture(t, map[string]time.Time{
		"src/a.go": time.Unix(100, 0),
		"bin/app":  time.Unix(200, 0),
		"bin/lib":  time.Unix(200, 0),
	})

	f.loader.EXPECT().Load("fresh.yaml").Return([]domain.Snapshot{
		snapshot("app", []string{"src/a.go"}, []string{"bin/app"}),
		snapshot("lib", []string{"src/a.go"}, []string{"bin/lib"}),
	}, nil)
	f.log.EXPECT().Info(gomock.Any()).Times(2)

	err := f.app.Check(context.Background(), "fresh.yaml", nil)
	assert.NoError(t, err)
}

func TestCheck_StaleConfiguration(t *testing.T) {
	f := newFixture(t, map[string]time.Time{
		"src/a.go": time.Unix(300, 0),
		"bin/app":  time.Unix(200, 0),
	})

	f.loader.EXPECT().Load("fresh.yaml").Return([]domain.Snapshot{
		snapshot("app", []string{"src/a.go"}, []string{"bin/app"}),
	}, nil)
	f.log.EXPECT().Warn(gomock.Any())

	err := f.app.Check(context.Background(), "fresh.yaml", nil)
	require.ErrorIs(t, err, domain.ErrStaleDetected)
}

func TestCheck_FiltersToTargets(t *testing.T) {
	f := newFixture(t, map[string]time.Time{
		"bin/app": time.Unix(200, 0),
	})

	// Only "app" is evaluated; "lib" would be stale if it were.
	f.loader.EXPECT().Load("fresh.yaml").Return([]domain.Snapshot{
		snapshot("app", nil, []string{"bin/app"}),
		snapshot("lib", nil, []string{"bin/lib"}),
	}, nil)
	f.log.EXPECT().Info(gomock.Any())

	err := f.app.Check(context.Background(), "fresh.yaml", []string{"app"})
	assert.NoError(t, err)
}

func TestCheck_UnknownTarget(t *testing.T) {
	f := newFixture(t, nil)

	f.loader.EXPECT().Load("fresh.yaml").Return([]domain.Snapshot{
		snapshot("app", nil, []string{"bin/app"}),
	}, nil)

	err := f.app.Check(context.Background(), "fresh.yaml", []string{"ghost"})
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestCheck_LoaderError(t *testing.T) {
	f := newFixture(t, nil)

	f.loader.EXPECT().Load("fresh.yaml").Return(nil, assert.AnError)

	err := f.app.Check(context.Background(), "fresh.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load manifest")
}

func TestCheck_CancelledContext(t *testing.T) {
	f := newFixture(t, nil)

	f.loader.EXPECT().Load("fresh.yaml").Return([]domain.Snapshot{
		snapshot("app", nil, []string{"bin/app"}),
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.app.Check(ctx, "fresh.yaml", nil)
	require.ErrorIs(t, err, context.Canceled)
}

// TestCheck_LifecycleWiringLive drives a build-begin event through the real
// bus, notifier, resolver, and registry while a check is in flight, and
// verifies the event reaches the checker the check registered.
func TestCheck_LifecycleWiringLive(t *testing.T) {
	ctrl := gomock.NewController(t)

	statStarted := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	mockFS := mocks.NewMockFileSystem(ctrl)
	mockFS.EXPECT().ModTimeUTC(gomock.Any()).DoAndReturn(func(_ string) (time.Time, bool) {
		once.Do(func() {
			close(statStarted)
			<-release
		})
		return time.Unix(200, 0), true
	}).AnyTimes()

	loader := mocks.NewMockManifestLoader(ctrl)
	loader.EXPECT().Load("fresh.yaml").Return([]domain.Snapshot{
		snapshot("app", nil, []string{"bin/app"}),
	}, nil)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	registry := lifecycle.NewRegistry()
	hosts := host.NewTableResolver()
	bus := host.NewBuildBus()
	clock := clockwork.NewFakeClock()

	notifier := lifecycle.NewNotifier(bus, hosts, registry, mocks.NewMockFaultReporter(ctrl), clock)
	require.NoError(t, notifier.Start())
	defer func() { _ = notifier.Close() }()

	a := app.New(loader, check.NewFactory(mockFS), registry, hosts, log)

	done := make(chan error, 1)
	go func() {
		done <- a.Check(context.Background(), "fresh.yaml", nil)
	}()

	// The evaluation is blocked on its first stat, so registration and
	// handle binding have happened and are still in place.
	<-statStarted
	targets := registry.Targets("app", "Debug|AnyCPU")
	require.Len(t, targets, 1)

	bus.EmitBuildBegin(ports.BuildEvent{Handle: "app", Action: domain.ActionBuild})

	checker, ok := targets[0].(*check.Checker)
	require.True(t, ok)
	assert.Equal(t, clock.Now().UTC(), checker.BuildStartedAt())

	close(release)
	require.NoError(t, <-done)

	// The check run tears its registrations down again.
	assert.Empty(t, registry.Targets("app", "Debug|AnyCPU"))
	_, _, bound := hosts.ActiveConfiguration("app")
	assert.False(t, bound)
}
