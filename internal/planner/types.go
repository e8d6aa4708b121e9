package planner

import (
	"time"

	"github.com/backmassage/mediastamp/internal/device"
	"github.com/backmassage/mediastamp/internal/timestamp"
)

// Action is what the pipeline should do with a file.
type Action int

const (
	ActionRename Action = iota
	ActionSkip
)

// Plan is the resolved outcome for a single file: where it goes, which
// device bucket it landed in, and where its timestamp came from.
type Plan struct {
	Src    string
	Dst    string
	Action Action
	Reason string

	Device       device.Label
	DeviceSource device.Source

	Time       time.Time
	TimeSource timestamp.Source
}
