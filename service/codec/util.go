package codec

import (
	"fmt"

	"github.com/google/uuid"
)

// anonymousName labels a document parsed without a source location so that
// callers always have a non-empty handle for diagnostics.
func anonymousName() string {
	return fmt.Sprintf("anonymous-%s", uuid.New().String()[:8])
}
