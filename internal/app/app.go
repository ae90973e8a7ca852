// Package app implements the application layer for fresh.
package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.trai.ch/fresh/internal/adapters/host" //nolint:depguard // App owns the host resolution tables
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/fresh/internal/engine/check"
	"go.trai.ch/fresh/internal/engine/lifecycle"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader   ports.ManifestLoader
	factory  *check.Factory
	registry *lifecycle.Registry
	hosts    *host.TableResolver
	log      ports.Logger
}

// New creates a new App instance. The registry and resolver are shared with
// the notifier: checkers registered during a check receive build-lifecycle
// notifications for their configuration.
func New(
	loader ports.ManifestLoader,
	factory *check.Factory,
	registry *lifecycle.Registry,
	hosts *host.TableResolver,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		factory:  factory,
		registry: registry,
		hosts:    hosts,
		log:      log,
	}
}

type checkTarget struct {
	snapshot *domain.Snapshot
	checker  *check.Checker
}

// Check evaluates the freshness of the given projects. An empty target list
// evaluates every project in the manifest. Each configuration is evaluated
// on its own goroutine with its own timestamp pass.
//
// For the duration of the check, each configuration's checker is registered
// for lifecycle notification and its project handle is bound in the host
// resolution table, so a build beginning mid-check marks the affected
// configuration's verdict unreliable instead of racing it silently.
func (a *App) Check(ctx context.Context, manifestPath string, targets []string) error {
	snapshots, err := a.loader.Load(manifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	selected, err := filterTargets(snapshots, targets)
	if err != nil {
		return err
	}

	defer a.unregister(selected)
	checkTargets, err := a.register(selected)
	if err != nil {
		return err
	}

	var stale atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for _, target := range checkTargets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			verdict, err := target.checker.IsUpToDate(target.snapshot)
			if err != nil {
				return zerr.With(zerr.With(err, "project", target.snapshot.Project), "configuration", target.snapshot.Configuration)
			}

			a.report(target.snapshot, verdict)
			if verdict.Status == domain.StatusStale {
				stale.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if n := stale.Load(); n > 0 {
		return zerr.With(zerr.Wrap(domain.ErrStaleDetected, ""), "count", n)
	}
	return nil
}

// register creates one checker per configuration, exports it in the registry,
// and binds the project's handle in the host resolution table. The handle is
// the project name; a project with several configurations keeps the last
// bound one active, matching a host that tracks one active configuration per
// project.
func (a *App) register(selected []domain.Snapshot) ([]checkTarget, error) {
	targets := make([]checkTarget, len(selected))
	for i := range selected {
		snapshot := &selected[i]
		project := snapshot.Project.String()
		configuration := snapshot.Configuration.String()

		checker := a.factory.New()
		if err := a.registry.Register(project, configuration, checker); err != nil {
			return nil, zerr.With(zerr.With(err, "project", project), "configuration", configuration)
		}
		a.hosts.Bind(domain.ProjectHandle(project), project, configuration)

		targets[i] = checkTarget{snapshot: snapshot, checker: checker}
	}
	return targets, nil
}

func (a *App) unregister(selected []domain.Snapshot) {
	for i := range selected {
		project := selected[i].Project.String()
		a.registry.Unregister(project, selected[i].Configuration.String())
		a.hosts.Unbind(domain.ProjectHandle(project))
	}
}

func (a *App) report(snapshot *domain.Snapshot, verdict domain.Verdict) {
	target := fmt.Sprintf("%s [%s]", snapshot.Project, snapshot.Configuration)
	if verdict.Status == domain.StatusUpToDate {
		a.log.Info(fmt.Sprintf("%s: up to date", target))
		return
	}
	a.log.Warn(fmt.Sprintf("%s: stale (%s)", target, verdict.Reason))
}

// filterTargets narrows the snapshot list to the named projects. Every name
// must match at least one project in the manifest.
func filterTargets(snapshots []domain.Snapshot, targets []string) ([]domain.Snapshot, error) {
	if len(targets) == 0 {
		return snapshots, nil
	}

	known := make(map[string]bool, len(snapshots))
	for _, s := range snapshots {
		known[s.Project.String()] = true
	}

	wanted := make(map[string]bool, len(targets))
	for _, name := range targets {
		if !known[name] {
			return nil, zerr.With(zerr.Wrap(domain.ErrProjectNotFound, ""), "project", name)
		}
		wanted[name] = true
	}

	selected := make([]domain.Snapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if wanted[s.Project.String()] {
			selected = append(selected, s)
		}
	}
	return selected, nil
}
