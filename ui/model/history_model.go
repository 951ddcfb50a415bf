package model

// HistoryModel counts crops performed during this run.
// The zero value is ready to use.
type HistoryModel struct {
	completed  int
	failed     int
	lastOutput string
}

func NewHistoryModel() *HistoryModel { return &HistoryModel{} }

// RecordSuccess counts a written crop.
func (m *HistoryModel) RecordSuccess(output string) {
	if m == nil {
		return
	}
	m.completed++
	m.lastOutput = output
}

// RecordFailure counts a crop that the service rejected.
func (m *HistoryModel) RecordFailure() {
	if m == nil {
		return
	}
	m.failed++
}

// Values returns the completed and failed counts.
func (m *HistoryModel) Values() (completed, failed int) {
	if m == nil {
		return 0, 0
	}
	return m.completed, m.failed
}

// LastOutput returns the path of the most recent written crop, if any.
func (m *HistoryModel) LastOutput() string {
	if m == nil {
		return ""
	}
	return m.lastOutput
}
