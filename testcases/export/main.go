// Command export writes the built-in test cases to testdata/testcases.json,
// in the case file format read by "pluscount check".
// Run from the module root directory.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"seehuhn.de/go/plus/internal/casefile"
	"seehuhn.de/go/plus/testcases"
)

const outFile = "testdata/testcases.json"

func main() {
	out, err := casefile.FromTestCases(testcases.All, testcases.Paths)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}
