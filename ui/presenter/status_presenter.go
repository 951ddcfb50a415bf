package presenter

import "github.com/soocke/ratio-crop-go/ui/model"

// StatusView displays the status line and the crop counters.
type StatusView interface {
	SetStatus(kind model.StatusKind, text string)
	SetCounter(completed, failed int)
	SetConfigEditable(enabled bool)
}

// StatusPresenter pushes model changes into the view. Settings are locked
// while an editing session is open.
type StatusPresenter struct {
	status  *model.StatusModel
	history *model.HistoryModel
	editing func() bool
	view    StatusView

	version    uint64
	shown      bool
	done, fail int
	locked     bool
}

func NewStatusPresenter(status *model.StatusModel, history *model.HistoryModel, editing func() bool, view StatusView) *StatusPresenter {
	return &StatusPresenter{status: status, history: history, editing: editing, view: view}
}

// Tick updates the view when anything changed since the last call.
func (p *StatusPresenter) Tick() {
	if p == nil || p.view == nil {
		return
	}
	kind, text, v := p.status.Value()
	if !p.shown || v != p.version {
		p.view.SetStatus(kind, text)
		p.version = v
	}
	done, fail := p.history.Values()
	if !p.shown || done != p.done || fail != p.fail {
		p.view.SetCounter(done, fail)
		p.done, p.fail = done, fail
	}
	locked := p.editing != nil && p.editing()
	if !p.shown || locked != p.locked {
		p.view.SetConfigEditable(!locked)
		p.locked = locked
	}
	p.shown = true
}
