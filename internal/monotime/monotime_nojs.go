//go:build !js

package monotime

import (
	"time"
)

// start is read with a monotonic reading so Now never goes backwards
// if the wall clock changes
var start = time.Now()

func now() time.Duration {
	return time.Since(start)
}
