// Command msc finds exact minimum set covers and benchmarks the search
// against reference solvers.
package main

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetLevel(log.InfoLevel)

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		return exitCode(err)
	}
	return exitOK
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "msc",
		Short: "Exact minimum set cover solver",
		Long: `msc finds a smallest collection of sets whose union is the universe
{1..N} of an instance file, and benchmarks the search over suites of testcases.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		newSolveCmd(),
		newBenchCmd(),
		newGenerateCmd(),
		newCompareCmd(),
		newTabulateCmd(),
	)

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	if err := rootCmd.PersistentFlags().MarkHidden("debug"); err != nil {
		log.Panic(err.Error())
	}
	return rootCmd
}
