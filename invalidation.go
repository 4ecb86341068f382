package flowlayout

import (
	"fmt"

	"github.com/grindlemire/go-flowlayout/internal/debug"
)

// InvalidationKind is how much cached state an invalidation discards. Larger
// kinds include smaller ones.
type InvalidationKind uint8

const (
	InvalidateNone       InvalidationKind = iota // Keep models and metrics
	InvalidateMetrics                            // Re-read configuration for existing models
	InvalidateEverything                         // Rebuild every model from the DataSource
)

// String returns the kind name.
func (k InvalidationKind) String() string {
	switch k {
	case InvalidateNone:
		return "none"
	case InvalidateMetrics:
		return "metrics"
	case InvalidateEverything:
		return "everything"
	default:
		return fmt.Sprintf("InvalidationKind(%d)", k)
	}
}

// BoundsChange records a change of the visible region.
type BoundsChange struct {
	From Rect
	To   Rect
}

// InvalidationRequest describes what the host wants recomputed.
type InvalidationRequest struct {
	Kind   InvalidationKind
	Bounds *BoundsChange
}

// Merge coalesces two requests: the larger kind wins and the later bounds
// change replaces the earlier one.
func (r InvalidationRequest) Merge(other InvalidationRequest) InvalidationRequest {
	r.Kind = max(r.Kind, other.Kind)
	if other.Bounds != nil {
		r.Bounds = other.Bounds
	}
	return r
}

// prepareActions is the work the next Prepare performs.
type prepareActions uint8

const (
	recreateSectionModels prepareActions = 1 << iota
	updateLayoutMetrics
)

// Invalidate records what the next Prepare must recompute. Requests accumulate
// until Prepare runs; a pending full rebuild absorbs a metrics pass.
func (l *Layout) Invalidate(req InvalidationRequest) {
	if req.Bounds != nil {
		l.store.SetBounds(req.Bounds.To)
	}
	switch req.Kind {
	case InvalidateEverything:
		l.pending |= recreateSectionModels
	case InvalidateMetrics:
		l.pending |= updateLayoutMetrics
	}
	debug.Prepare("invalidate %s (pending %02b)", req.Kind, l.pending)
}

// ShouldInvalidateForBoundsChange reports whether moving to newBounds requires
// recomputation: the cross-axis extent changed, or pinned elements need to
// follow the new origin.
func (l *Layout) ShouldInvalidateForBoundsChange(newBounds Rect) bool {
	old := l.store.Bounds()
	if dir := l.store.Direction(); dir.Cross(old.Size()) != dir.Cross(newBounds.Size()) {
		return true
	}
	return l.hasPinned && (old != newBounds)
}

// InvalidationForBoundsChange returns the request to pass to Invalidate for
// newBounds. Only a cross-axis resize re-reads metrics; everything else just
// moves the bounds.
func (l *Layout) InvalidationForBoundsChange(newBounds Rect) InvalidationRequest {
	old := l.store.Bounds()
	req := InvalidationRequest{Bounds: &BoundsChange{From: old, To: newBounds}}
	if dir := l.store.Direction(); dir.Cross(old.Size()) != dir.Cross(newBounds.Size()) {
		req.Kind = InvalidateMetrics
	}
	return req
}
