package commands

import (
	"github.com/spf13/cobra"
)

func iosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ios",
		Short: "Write the iOS AppIcon set and Contents.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := appCtx.Bootstrap()
			if err != nil {
				return err
			}
			return finish(appCtx.IOS(cmd.Context(), cfg))
		},
	}
}
