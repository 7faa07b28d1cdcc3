package pagetabs

// NoIndex marks an unset tab or gap position.
const NoIndex = -1

// DragPhase is the phase of a tab drag.
type DragPhase int

const (
	// DragIdle means no drag is in progress.
	DragIdle DragPhase = iota
	// Dragging means a tab is held but has not been over another tab yet.
	Dragging
	// DraggingOver means a tab is held over another tab.
	DraggingOver
)

func (p DragPhase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	case DraggingOver:
		return "dragging-over"
	default:
		return "idle"
	}
}

// DragState tracks the tab being dragged and the tab it is over.
// Indices refer to the page order at the time the drag started.
type DragState struct {
	Phase  DragPhase
	Source int
	Target int
}

// NewDragState returns an idle drag state.
func NewDragState() DragState {
	return DragState{Phase: DragIdle, Source: NoIndex, Target: NoIndex}
}

// Active reports whether a tab is being dragged.
func (d DragState) Active() bool {
	return d.Phase != DragIdle
}

// Start begins dragging tab i. Ignored while another drag is active.
func (d *DragState) Start(i int) {
	if i < 0 || d.Active() {
		return
	}
	*d = DragState{Phase: Dragging, Source: i, Target: NoIndex}
}

// Over records that the dragged tab is over tab j.
// Being over the source tab changes nothing.
func (d *DragState) Over(j int) {
	if !d.Active() || j < 0 || j == d.Source {
		return
	}
	d.Phase = DraggingOver
	d.Target = j
}

// Drop ends the drag on tab j. ok is false when there was no drag or j is
// the source tab. The state is idle afterwards in every case.
func (d *DragState) Drop(j int) (from, to int, ok bool) {
	defer d.Cancel()
	if !d.Active() || j < 0 || j == d.Source {
		return NoIndex, NoIndex, false
	}
	return d.Source, j, true
}

// Cancel ends the drag without effect.
func (d *DragState) Cancel() {
	*d = NewDragState()
}
