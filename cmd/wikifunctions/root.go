package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marius851000/wikifunction-intepreter-2/wferrors"
)

// newRootCmd assembles the command tree: run-tests names a subset of Z20
// objects by id, run-all-tests runs every Z20 found in the loaded fixture
// table. Stdout formatting is intentionally loose (spec.md §6: "stdout
// format is out of scope"); only the process exit code is load-bearing.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wikifunctions",
		Short:         "run Wikifunctions object-language test cases",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunTestsCmd())
	root.AddCommand(newRunAllTestsCmd())
	return root
}

func reportResults(results []testResult) error {
	failed := 0
	var failureLines []string
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", r.id, r.err)
			failureLines = append(failureLines, r.err.Error())
		} else {
			fmt.Printf("PASS %s\n", r.id)
		}
	}
	fmt.Printf("%d passed, %d failed, %d total\n", len(results)-failed, failed, len(results))
	if unique := wferrors.DedupeLines(failureLines); len(unique) > 0 {
		fmt.Println("unique failure reasons:")
		for _, line := range unique {
			fmt.Printf("  %s\n", line)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d test case(s) failed", failed)
	}
	return nil
}
