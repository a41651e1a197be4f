package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rnlauncher/internal/app"
)

var (
	projectRoot string
	configPath  string
	logLevel    string
	logFormat   string
	skipDeps    bool
	packages    []string
	strict      bool

	appCtx *app.App
	logger *logrus.Logger
)

// Execute runs the CLI against os.Args, cancelling on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rnlauncher",
		Short:        "Generate Android and iOS launcher icons from one source image",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return err
			}
			logger = l

			if projectRoot == "" {
				wd, err := os.Getwd()
				if err != nil {
					return errors.Wrap(err, "resolving working directory")
				}
				projectRoot = wd
			}
			abs, err := filepath.Abs(projectRoot)
			if err != nil {
				return errors.Wrapf(err, "resolving %s", projectRoot)
			}

			var pkgs []string
			if cmd.Flags().Changed("deps") {
				pkgs = append([]string{}, packages...)
			}
			appCtx = app.New(app.Config{
				Root:       abs,
				ConfigPath: configPath,
				Packages:   pkgs,
				SkipDeps:   skipDeps,
				Log:        logger,
			})
			return nil
		},
		RunE: runGenerate,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&projectRoot, "root", "", "project root (default current directory)")
	pf.StringVarP(&configPath, "config", "c", "", "launcher config (default <root>/launcher.json)")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&skipDeps, "skip-deps", false, "do not install or remove project packages")
	pf.StringSliceVar(&packages, "deps", nil, "project packages installed around a run (default sharp,fs-extra,xml2js)")
	pf.BoolVar(&strict, "strict", false, "exit non-zero when any step fails")

	root.AddCommand(generateCmd(), initCmd(), androidCmd(), iosCmd(), manifestCmd())
	return root
}

// finish turns step results into the command's exit status.
func finish(results ...app.StepResult) error {
	if !strict {
		return nil
	}
	return app.Report{Steps: results}.Err()
}
