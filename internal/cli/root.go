package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/haievyiivan/qr-code-maker/internal/buildinfo"
	"github.com/haievyiivan/qr-code-maker/internal/ui/console"
)

// errReported marks failures that were already printed as a status line and
// only need to be reflected in the exit status.
var errReported = errors.New("failure already reported")

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			console.NewPrinter(os.Stderr).Failure(console.FailureLabel(err), console.Detail(err))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:           "qr-code-maker [text]",
		Short:         "Generate a QR code PNG from a URL or text",
		Args:          cobra.MaximumNArgs(1),
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.outputSet = cmd.Flags().Changed("output")
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "Directory to save the image (created if missing)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Custom filename: make sure to add .png at the end (default: auto-generated from the text)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML file with render settings and defaults (optional)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Decode the written image and check it matches the input")
	cmd.Flags().BoolVar(&opts.show, "show", false, "Also print the QR code on the terminal")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with status 1 when the image cannot be written or verified")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to stderr")

	// No subcommands: any word, including "help" or "version", is text to encode.
	cmd.SetVersionTemplate("{{.Version}}\n")
	return cmd
}
