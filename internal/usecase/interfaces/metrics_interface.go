package interfaces

// IMetrics receives bot counters. Implementations must be safe for
// concurrent use.
type IMetrics interface {
	ObserveInbound(kind string)
	ObserveDropped(reason string)
	ObserveStepFailure(stage string)
	ObserveSubmission(channel string, ok bool)
	ObservePostalLookup(result string)
	SetCatalogSize(n int)
	SetActiveHandoffs(n int)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) ObserveInbound(string)          {}
func (NopMetrics) ObserveDropped(string)          {}
func (NopMetrics) ObserveStepFailure(string)      {}
func (NopMetrics) ObserveSubmission(string, bool) {}
func (NopMetrics) ObservePostalLookup(string)     {}
func (NopMetrics) SetCatalogSize(int)             {}
func (NopMetrics) SetActiveHandoffs(int)          {}
