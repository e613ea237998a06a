package picker

import (
	"github.com/Cyclone1070/volpick/internal/selection"
)

// Action identifies how the picker was dismissed.
type Action int

const (
	ActionCancel Action = iota
	ActionConfirm
)

func (a Action) String() string {
	switch a {
	case ActionCancel:
		return "cancel"
	case ActionConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Result is delivered once a dispatch completes.
type Result struct {
	Action Action
	Path   string
}

// Dispatcher runs the dismissal protocol of one picker. Only the first
// Cancel or Confirm has any effect.
type Dispatcher struct {
	store *selection.Store
	opts  Options
	host  Dismisser

	dispatched bool
	done       chan Result
}

// NewDispatcher creates a Dispatcher. The host must not be nil.
func NewDispatcher(store *selection.Store, opts Options, host Dismisser) *Dispatcher {
	if store == nil {
		panic("store is required")
	}
	if host == nil {
		panic("host is required")
	}
	return &Dispatcher{
		store: store,
		opts:  opts,
		host:  host,
		done:  make(chan Result, 1),
	}
}

// Cancel passes the current selection to OnCancel and dismisses the
// screen. Host widgets are not refreshed.
func (d *Dispatcher) Cancel() bool {
	return d.dispatch(ActionCancel)
}

// Confirm passes the current selection to OnConfirm, refreshes every
// registered widget with recompose set, then dismisses the screen.
func (d *Dispatcher) Confirm() bool {
	return d.dispatch(ActionConfirm)
}

// Dispatched reports whether Cancel or Confirm already ran.
func (d *Dispatcher) Dispatched() bool {
	return d.dispatched
}

// Done yields the Result of the dispatch exactly once.
func (d *Dispatcher) Done() <-chan Result {
	return d.done
}

func (d *Dispatcher) dispatch(action Action) bool {
	if d.dispatched {
		return false
	}
	d.dispatched = true

	path := d.store.Current()
	switch action {
	case ActionConfirm:
		if d.opts.OnConfirm != nil {
			d.opts.OnConfirm(path)
		}
		for _, r := range d.opts.Refresh {
			r.Refresh(true)
		}
	case ActionCancel:
		if d.opts.OnCancel != nil {
			d.opts.OnCancel(path)
		}
	}

	d.host.PopScreen()
	d.done <- Result{Action: action, Path: path}
	return true
}
