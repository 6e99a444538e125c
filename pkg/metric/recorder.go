package metric

import "github.com/prometheus/client_golang/prometheus"

// Namespace prefixes every metric name.
const Namespace = "breve"

// Recorder counts context menu lifecycle events.
type Recorder interface {
	// Opened counts a menu that was built and shown.
	Opened()
	// Closed counts a dismissal, labeled with what triggered it.
	Closed(reason string)
	// Rejected counts an open request refused by the single-instance guard.
	Rejected(reason string)
	// Dropped counts a menu item omitted because its description is invalid.
	Dropped(reason string)
}

type menuRecorder struct {
	opened   *Counter
	closed   *Counter
	rejected *Counter
	dropped  *Counter
}

// NewRecorder registers the menu counters with reg.
func NewRecorder(reg prometheus.Registerer) Recorder {
	return &menuRecorder{
		opened:   NewCounterWithRegistry(reg, "menus_opened_total", "Number of context menus opened."),
		closed:   NewCounterWithRegistry(reg, "menus_closed_total", "Number of context menus closed, by trigger.", "reason"),
		rejected: NewCounterWithRegistry(reg, "menu_open_rejected_total", "Number of refused open requests, by reason.", "reason"),
		dropped:  NewCounterWithRegistry(reg, "menu_items_dropped_total", "Number of invalid menu items left out, by reason.", "reason"),
	}
}

func (r *menuRecorder) Opened()                { r.opened.Increment() }
func (r *menuRecorder) Closed(reason string)   { r.closed.Increment(reason) }
func (r *menuRecorder) Rejected(reason string) { r.rejected.Increment(reason) }
func (r *menuRecorder) Dropped(reason string)  { r.dropped.Increment(reason) }

// Nop is a Recorder that records nothing.
var Nop Recorder = nop{}

type nop struct{}

func (nop) Opened()         {}
func (nop) Closed(string)   {}
func (nop) Rejected(string) {}
func (nop) Dropped(string)  {}
