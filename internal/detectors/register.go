package detectors

import (
	"sync"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

var registerOnce sync.Once

// RegisterBuiltins appends the built-in detectors to the process-wide
// registries, once per process. Call it before the first scan.
//
// Third-party detectors registered BEFORE this call take precedence over
// the builtins under first-match-wins; detectors registered after run only
// for columns the builtins leave unclassified.
func RegisterBuiltins() {
	registerOnce.Do(func() {
		piiscan.RegisterMetadataDetector(NewNameRegexDetector())
		piiscan.RegisterDatumDetector(NewDatumRegexDetector())
	})
}
