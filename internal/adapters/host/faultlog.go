package host

import (
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FaultReporter = (*FaultLog)(nil)

// FaultLog reports background faults to the logger. Faults are diagnostics
// only; reporting never fails and never propagates.
type FaultLog struct {
	log ports.Logger
}

// NewFaultLog creates a FaultLog over the given logger.
func NewFaultLog(log ports.Logger) *FaultLog {
	return &FaultLog{log: log}
}

// ReportFault implements ports.FaultReporter.
func (f *FaultLog) ReportFault(err error) {
	if err == nil {
		return
	}
	f.log.Error(zerr.Wrap(err, "background notification fault"))
}
