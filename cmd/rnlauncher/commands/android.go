package commands

import (
	"github.com/spf13/cobra"
)

func androidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "android",
		Short: "Write regular and rounded mipmap icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := appCtx.Bootstrap()
			if err != nil {
				return err
			}
			return finish(
				appCtx.Android(cmd.Context(), cfg, false),
				appCtx.Android(cmd.Context(), cfg, true),
			)
		},
	}
}
