package history

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a short stable digest of rule file text. Stored
// with each run record, it tells whether two runs of a target saw the
// same rules without keeping the full text around.
func Fingerprint(ruleText string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(ruleText))
}
