package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/midimml/constants"
)

// OutputPath is where the notation for midiPath is written inside outDir.
func OutputPath(outDir, midiPath string) string {
	base := filepath.Base(midiPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, name+constants.MMLExtension)
}

// CreateOutputMap pairs every MIDI path with its output path. A name that is
// already taken gets the lowest free numbered suffix, so no two inputs share
// an output.
func CreateOutputMap(paths []string, outDir string) map[string]string {
	res := make(map[string]string)
	taken := make(map[string]bool)
	for _, p := range paths {
		out := OutputPath(outDir, p)
		base := strings.TrimSuffix(out, constants.MMLExtension)
		for n := 1; taken[out]; n++ {
			out = fmt.Sprintf("%s-%d%s", base, n, constants.MMLExtension)
		}
		taken[out] = true
		res[p] = out
	}
	return res
}
