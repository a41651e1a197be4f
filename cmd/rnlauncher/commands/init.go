package commands

import (
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create launcher.json with default icon paths if it is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := appCtx.Store.EnsureConfig()
			if err != nil {
				return err
			}
			if created {
				logger.Info("launcher.json file created successfully.")
			} else {
				logger.Info("launcher.json file already exists. Skipping creation.")
			}
			return nil
		},
	}
}
