//go:build js

package monotime

import (
	"syscall/js"
	"time"
)

func now() time.Duration {
	// performance.now() is monotonic and sub-millisecond, Date.now() is neither
	return time.Duration(js.Global().Get("performance").Call("now").Float() * float64(time.Millisecond))
}
