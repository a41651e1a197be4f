package commands

import (
	"github.com/spf13/cobra"

	"rnlauncher/internal/app"
	"rnlauncher/internal/domain"
)

// manifest [name]: with no name, apply the pipeline's two patches in order.
func manifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest [icon-name]",
		Short: "Point AndroidManifest.xml at a mipmap icon",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return finish(appCtx.PatchManifest(app.StepManifest, args[0]))
			}
			return finish(
				appCtx.PatchManifest(app.StepManifest, domain.LauncherIcon),
				appCtx.PatchManifest(app.StepManifestRound, domain.LauncherIconRound),
			)
		},
	}
}
