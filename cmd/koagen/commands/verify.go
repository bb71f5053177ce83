package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/koagen/internal/errors"
	"github.com/thoreinstein/koagen/internal/generator"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify <path>",
	Short: "Check a project against the koagen template",
	Long: `Check that <path> holds every directory and file koagen generates,
that package.json carries the expected start script and dependency, and
that the generated sources are unchanged.

README.md and .npmrc are checked against the active stub policy.`,
	Example: `  koagen verify ./hello
  koagen verify ./hello --stub-policy filled`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	policy, err := generator.ParsePolicy(loadedCfg.StubPolicy)
	if err != nil {
		return errors.NewConfigError(err)
	}

	root := args[0]
	problems := generator.Verify(appFs, root, policy)
	out := cmd.OutOrStdout()

	if len(problems) == 0 {
		if !quiet {
			fmt.Fprintf(out, "%s matches the koagen template\n", root)
		}
		return nil
	}

	for _, p := range problems {
		fmt.Fprintf(out, "  %v\n", p)
	}
	return errors.NewUserError(
		errors.Newf("%s: %d problem(s) found", root, len(problems)),
		"Regenerate into a fresh directory to compare",
	)
}
