package timex

import "time"

var boot = time.Now()

// NowMs returns Unix milliseconds as int64. Use for timestamps in payloads.
func NowMs() int64 { return time.Now().UnixMilli() }

// MonoMs returns milliseconds since process start, read from the runtime's
// monotonic clock. Animation timing uses this, never wall time.
func MonoMs() int64 { return int64(time.Since(boot) / time.Millisecond) }
