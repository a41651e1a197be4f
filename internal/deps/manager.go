package deps

import (
	"context"

	"github.com/sirupsen/logrus"

	"rnlauncher/internal/domain"
)

// DefaultPackages are the project packages declared around a run.
var DefaultPackages = []string{"sharp", "fs-extra", "xml2js"}

// Manager applies the install-before / uninstall-after policy. It never
// returns errors; failures are logged and the pipeline carries on with
// whatever state resulted.
type Manager struct {
	provider domain.DependencyProvider
	log      logrus.FieldLogger
}

// NewManager returns a manager over provider.
func NewManager(provider domain.DependencyProvider, log logrus.FieldLogger) *Manager {
	return &Manager{provider: provider, log: log.WithField("step", "deps")}
}

// EnsureInstalled installs each missing package in order.
func (m *Manager) EnsureInstalled(ctx context.Context, pkgs ...string) {
	for _, pkg := range pkgs {
		l := m.log.WithField("package", pkg)
		if m.provider.IsInstalled(ctx, pkg) {
			l.Info("already installed")
			continue
		}
		l.Info("installing")
		if err := m.provider.Install(ctx, pkg); err != nil {
			l.WithError(err).Error("install failed")
			continue
		}
		l.Info("installed")
	}
}

// EnsureUninstalled removes each present package in order.
func (m *Manager) EnsureUninstalled(ctx context.Context, pkgs ...string) {
	for _, pkg := range pkgs {
		l := m.log.WithField("package", pkg)
		if !m.provider.IsInstalled(ctx, pkg) {
			l.Info("already uninstalled")
			continue
		}
		l.Info("uninstalling")
		if err := m.provider.Uninstall(ctx, pkg); err != nil {
			l.WithError(err).Error("uninstall failed")
			continue
		}
		l.Info("uninstalled")
	}
}

// Reversed returns pkgs in reverse order, the order they are torn down in.
func Reversed(pkgs []string) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[len(pkgs)-1-i] = p
	}
	return out
}
