package ports

// FaultReporter accepts failures from background notification work for
// diagnostics. A fault reported here must never destabilize the host: the
// reporter absorbs the error and returns.
//
//go:generate go run go.uber.org/mock/mockgen -source=fault_reporter.go -destination=mocks/mock_fault_reporter.go -package=mocks
type FaultReporter interface {
	ReportFault(err error)
}
