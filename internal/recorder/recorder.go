package recorder

import "BacktestDesk/internal/model"

// Recorder persists evaluated snapshots for later analysis.
type Recorder interface {
	RecordSnapshot(snap *model.Snapshot) error
	Close() error
}
