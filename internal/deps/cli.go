package deps

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"rnlauncher/internal/domain"
)

// Tool is a package manager command set.
type Tool struct {
	Name      string
	Probe     []string // appended with the package name
	Install   []string
	Uninstall []string
}

var (
	// Yarn is preferred when available.
	Yarn = Tool{
		Name:      "yarn",
		Probe:     []string{"info", "--name-only"},
		Install:   []string{"add"},
		Uninstall: []string{"remove"},
	}
	// NPM is the fallback.
	NPM = Tool{
		Name:      "npm",
		Probe:     []string{"list"},
		Install:   []string{"install"},
		Uninstall: []string{"uninstall"},
	}
)

// Runner executes name with args inside dir and returns its combined output.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// CLI is a DependencyProvider backed by the yarn or npm command line.
type CLI struct {
	dir string
	run Runner

	once sync.Once
	tool Tool
}

// NewCLI returns a provider operating on the project in dir. A nil run uses
// ExecRunner.
func NewCLI(dir string, run Runner) *CLI {
	if run == nil {
		run = ExecRunner
	}
	return &CLI{dir: dir, run: run}
}

// Tool reports which package manager is in use, detecting it on first call.
func (c *CLI) Tool(ctx context.Context) Tool {
	c.once.Do(func() {
		c.tool = NPM
		if _, err := c.run(ctx, c.dir, Yarn.Name, "--version"); err == nil {
			c.tool = Yarn
		}
	})
	return c.tool
}

// IsInstalled reports whether pkg is present. Any probe failure, including a
// missing package manager, reads as "not installed".
func (c *CLI) IsInstalled(ctx context.Context, pkg string) bool {
	t := c.Tool(ctx)
	_, err := c.run(ctx, c.dir, t.Name, append(t.Probe, pkg)...)
	return err == nil
}

// Install adds pkg to the project.
func (c *CLI) Install(ctx context.Context, pkg string) error {
	t := c.Tool(ctx)
	return c.exec(ctx, t, append(t.Install, pkg))
}

// Uninstall removes pkg from the project.
func (c *CLI) Uninstall(ctx context.Context, pkg string) error {
	t := c.Tool(ctx)
	return c.exec(ctx, t, append(t.Uninstall, pkg))
}

func (c *CLI) exec(ctx context.Context, t Tool, args []string) error {
	out, err := c.run(ctx, c.dir, t.Name, args...)
	if err != nil {
		return errors.Wrapf(err, "%s %s: %s", t.Name, strings.Join(args, " "), strings.TrimSpace(string(out)))
	}
	return nil
}

// Compile-time assertion that CLI implements domain.DependencyProvider.
var _ domain.DependencyProvider = (*CLI)(nil)
