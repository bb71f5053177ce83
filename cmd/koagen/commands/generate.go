package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/koagen/internal/errors"
	"github.com/thoreinstein/koagen/internal/generator"
	"github.com/thoreinstein/koagen/internal/logging"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	policy, err := generator.ParsePolicy(loadedCfg.StubPolicy)
	if err != nil {
		return errors.NewConfigError(err)
	}

	g := generator.New(appFs,
		generator.WithStubPolicy(policy),
		generator.WithLogger(logging.FromContext(ctx)),
	)

	res, err := g.Generate(ctx, args[0])
	if err != nil {
		return exitErrorFor(err)
	}

	if !quiet {
		printSummary(cmd.OutOrStdout(), res)
	}
	return nil
}

// exitErrorFor attaches an exit code and a suggestion to a generator error.
func exitErrorFor(err error) error {
	switch {
	case errors.Is(err, generator.ErrAlreadyExists):
		return errors.NewUserError(err, "Choose a path that does not exist yet")
	case errors.Is(err, generator.ErrMissingParent):
		return errors.NewUserError(err, "Create the parent directory first")
	case errors.Is(err, generator.ErrInvalidPath):
		return errors.NewUserError(err, "Pass the directory to create, e.g. koagen ./hello")
	case errors.Is(err, generator.ErrPermission):
		return errors.NewSystemError(err, "Check write permissions on the parent directory")
	default:
		return errors.NewSystemError(err, "")
	}
}

func printSummary(w io.Writer, res *generator.Result) {
	check := "✓"
	if logging.SupportsColor(w) {
		check = color.New(color.FgGreen).Sprint(check)
	}

	fmt.Fprintf(w, "%s Created project at %s\n", check, res.Root)
	fmt.Fprintln(w)
	for _, d := range res.Dirs[1:] {
		fmt.Fprintf(w, "  %s/\n", relTo(res.Root, d))
	}
	for _, f := range res.Files {
		fmt.Fprintf(w, "  %s\n", relTo(res.Root, f))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Next steps:")
	fmt.Fprintf(w, "    cd %s\n", res.Root)
	fmt.Fprintln(w, "    npm install")
	fmt.Fprintln(w, "    npm start")
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
