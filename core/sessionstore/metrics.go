package sessionstore

// Strategy labels used when recording metrics.
const (
	StrategyCookie = "cookie"
	StrategyMemory = "memory"
)

// Read outcomes used when recording metrics.
const (
	ReadHit     = "hit"
	ReadMiss    = "miss"
	ReadInvalid = "invalid"
)

// MetricsRecorder receives store activity. Implementations must be safe for
// concurrent use.
type MetricsRecorder interface {
	// RecordRead records a read outcome: ReadHit, ReadMiss or ReadInvalid.
	RecordRead(strategy, result string)
	// RecordSave records a successful save.
	RecordSave(strategy string)
	// RecordRollover records a rollover; renewed is false when there was nothing to extend.
	RecordRollover(strategy string, renewed bool)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) RecordRead(string, string)   {}
func (NoopMetrics) RecordSave(string)           {}
func (NoopMetrics) RecordRollover(string, bool) {}

var _ MetricsRecorder = NoopMetrics{}
