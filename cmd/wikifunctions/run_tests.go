package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/marius851000/wikifunction-intepreter-2/internal/eval"
	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
)

func newRunTestsCmd() *cobra.Command {
	var objectsDir string
	var idsFile string

	cmd := &cobra.Command{
		Use:   "run-tests [ids...]",
		Short: "run the named Z20 test cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := append([]string{}, args...)
			if idsFile != "" {
				fromFile, err := readIDsFile(idsFile)
				if err != nil {
					return err
				}
				ids = append(ids, fromFile...)
			}
			if len(ids) == 0 {
				return fmt.Errorf("no test case ids given: pass them as arguments or via --ids-file")
			}

			g, err := loadObjectsDir(objectsDir)
			if err != nil {
				return err
			}
			ctx := eval.NewContext(g)

			results := make([]testResult, 0, len(ids))
			for _, idText := range ids {
				k, perr := kid.Parse(idText)
				if perr != nil {
					results = append(results, testResult{err: fmt.Errorf("%q: %w", idText, perr)})
					continue
				}
				id, ok := k.AsZid()
				if !ok || !k.ZOnly() {
					results = append(results, testResult{err: fmt.Errorf("%q: not a bare object id", idText)})
					continue
				}
				results = append(results, testResult{id: id, err: runTestCase(ctx, id)})
			}
			return reportResults(results)
		},
	}

	cmd.Flags().StringVar(&objectsDir, "objects-dir", ".", "directory of <Zid>.json fixture files")
	cmd.Flags().StringVar(&idsFile, "ids-file", "", "YAML file listing additional test-case ids to run")
	return cmd
}

// readIDsFile decodes a YAML list of test-case ids (strings like "Z10001"),
// the supplemental way of naming more test cases than fit comfortably on a
// command line.
func readIDsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var ids []string
	if err := yaml.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ids, nil
}
