package feature

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID returns a time-ordered record id: the current unix-millisecond
// timestamp plus a random tiebreaker, so two records created in the
// same millisecond never collide.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
