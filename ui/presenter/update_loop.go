package presenter

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Editor   *EditorPresenter
	Status   *StatusPresenter
	Schedule func()
}

func NewLoop(ed *EditorPresenter, status *StatusPresenter, schedule func()) *Loop {
	return &Loop{Editor: ed, Status: status, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Editor != nil {
		l.Editor.Tick()
	}
	if l.Status != nil {
		l.Status.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
