package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Run the whole pipeline: config, packages, Android, iOS, manifest",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	report, err := appCtx.Run(cmd.Context())
	if err != nil {
		logger.WithError(err).Error("launcher run aborted")
		return err
	}

	var files int
	for _, s := range report.Steps {
		files += len(s.Outputs)
	}
	logger.WithFields(logrus.Fields{
		"files":  files,
		"failed": len(report.Failed()),
	}).Info("launcher run finished")

	return finish(report.Steps...)
}
