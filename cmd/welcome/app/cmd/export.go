package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/welcome"
	"github.com/3-lines-studio/welcome/internal/adapters/cli"
)

type exportOptions struct {
	outDir string
	title  string
}

func NewCmdExport(root *rootOptions, out io.Writer) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the page once into a static directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			output := cli.NewOutput(out, cmd.ErrOrStderr())

			app := welcome.New(
				welcome.WithLookup(cfg.Lookup),
				welcome.WithTitle(opts.title),
			)

			output.PrintHeader("Welcome Export")

			if v, ok := cfg.Lookup(welcome.EnvironmentVar); !ok || v == "" {
				output.PrintWarning("$%s is not set, using %q", welcome.EnvironmentVar, welcome.DefaultEnvironment)
			}

			files, err := app.ExportStatic(cmd.Context(), opts.outDir)
			if err != nil {
				output.PrintError("%v", err)
				return err
			}

			output.PrintSuccess("Rendered with environment %q", cfg.Environment())
			for _, f := range files {
				output.PrintFile(f)
			}
			output.PrintDone("Done")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVar(&opts.title, "title", "", "Document title")

	return cmd
}
