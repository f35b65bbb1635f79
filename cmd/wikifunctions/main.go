// Command wikifunctions runs Wikifunctions test cases (Z20 objects) against
// a fixture object table loaded from a directory of JSON files, one per
// object, exercising the evaluator core of this module end to end.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
