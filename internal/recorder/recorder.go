package recorder

import "time"

// RunRecord holds everything persisted for one completed analysis run.
type RunRecord struct {
	Symbol      string
	Source      string
	Start       time.Time
	End         time.Time
	SampleCount int
	Slope       float64
	Intercept   float64
	RSquared    float64
	FirstClose  float64
	LastClose   float64
	ChartPath   string
}

// Recorder persists completed runs for later inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
