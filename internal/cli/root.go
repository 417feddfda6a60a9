package cli

import (
	"github.com/kolah/asyncmodel/internal/config"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "asyncmodel",
		Short:         "Inspect AsyncAPI documents through a typed model",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	config.BindCommonFlags(root)
	root.AddCommand(
		newInfoCmd(),
		newServersCmd(),
		newServerCmd(),
		newChannelsCmd(),
		newChannelCmd(),
		newExtensionsCmd(),
	)

	return root
}
