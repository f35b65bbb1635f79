package main

import (
	"github.com/spf13/cobra"

	"github.com/marius851000/wikifunction-intepreter-2/internal/eval"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

func newRunAllTestsCmd() *cobra.Command {
	var objectsDir string

	cmd := &cobra.Command{
		Use:   "run-all-tests",
		Short: "run every Z20 test case found in the fixture table",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadObjectsDir(objectsDir)
			if err != nil {
				return err
			}
			ctx := eval.NewContext(g)

			var results []testResult
			for _, id := range g.Ids() {
				obj, err := g.Get(id)
				if err != nil {
					continue
				}
				refined, rerr := value.Refine(obj)
				if rerr != nil {
					continue
				}
				if _, ok := refined.(*value.TestCase); !ok {
					continue
				}
				results = append(results, testResult{id: id, err: runTestCase(ctx, id)})
			}
			return reportResults(results)
		},
	}

	cmd.Flags().StringVar(&objectsDir, "objects-dir", ".", "directory of <Zid>.json fixture files")
	return cmd
}
