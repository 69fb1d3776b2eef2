package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/archive/constants"
)

// version is stamped at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	var opts options
	root := &cobra.Command{
		Use:   "archive",
		Short: "Terminal showcase with a gated booking flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.Flags().BoolVar(&opts.debug, "debug", false, "Write logs to logs/archive.log and show the status HUD")
	root.Flags().BoolVar(&opts.mute, "mute", false, "Disable audio cues")
	root.Flags().IntVar(&opts.fps, "fps", constants.FrameRate, "Redraw rate in frames per second")
	root.Flags().StringVar(&opts.content, "content", "", "Showcase YAML to load instead of the embedded one")

	root.AddCommand(receiptCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
