package model

// StatusKind classifies a status message for styling.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusBusy
	StatusSuccess
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusInfo:
		return "info"
	case StatusBusy:
		return "busy"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// StatusModel holds the single status line shown in the main window.
// The zero value is usable. Updates occur on the UI thread.
type StatusModel struct {
	text    string
	kind    StatusKind
	version uint64
}

func NewStatusModel(text string) *StatusModel { return &StatusModel{text: text} }

// Set replaces the status line. Setting an identical value does not bump the version.
func (m *StatusModel) Set(kind StatusKind, text string) {
	if m == nil {
		return
	}
	if m.kind == kind && m.text == text {
		return
	}
	m.kind, m.text = kind, text
	m.version++
}

// Value returns the current status and a version that changes on every update.
func (m *StatusModel) Value() (kind StatusKind, text string, version uint64) {
	if m == nil {
		return StatusInfo, "", 0
	}
	return m.kind, m.text, m.version
}
