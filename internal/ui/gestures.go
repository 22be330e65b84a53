package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
	GesturePullToRefresh
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultPullThreshold     float32 = 80.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler classifies a finished pointer movement
type GestureHandler struct {
	swipeThreshold    float32
	pullThreshold     float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler with default thresholds
func NewGestureHandler() *GestureHandler {
	return &GestureHandler{
		swipeThreshold:    DefaultSwipeThreshold,
		pullThreshold:     DefaultPullThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// Classify maps a movement of (dx, dy) that took duration to a gesture.
// A mostly vertical downward movement past the pull threshold is a
// pull-to-refresh; shorter ones are plain swipes.
func (gh *GestureHandler) Classify(dx, dy float32, duration time.Duration) GestureType {
	absDx, absDy := abs32(dx), abs32(dy)
	if absDx < gh.swipeThreshold && absDy < gh.swipeThreshold {
		if duration >= gh.longPressDuration {
			return GestureLongPress
		}
		return GestureTap
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}

	if dy < 0 {
		return GestureSwipeUp
	}
	if dy >= gh.pullThreshold {
		return GesturePullToRefresh
	}
	return GestureSwipeDown
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// PullToRefresh is a drag handle shown above the grid. Dragging it down far
// enough calls OnRefresh once per drag.
type PullToRefresh struct {
	widget.BaseWidget

	OnRefresh func()

	handler   *GestureHandler
	label     *widget.Label
	icon      *widget.Icon
	dx, dy    float32
	startedAt time.Time
	enabled   bool
}

// NewPullToRefresh creates a pull handle with the given hint text
func NewPullToRefresh(hint string, onRefresh func()) *PullToRefresh {
	p := &PullToRefresh{
		OnRefresh: onRefresh,
		handler:   NewGestureHandler(),
		label:     widget.NewLabel(hint),
		icon:      widget.NewIcon(theme.MoveDownIcon()),
		enabled:   true,
	}
	p.label.Alignment = fyne.TextAlignCenter
	p.label.Importance = widget.LowImportance
	p.ExtendBaseWidget(p)
	return p
}

// SetHint updates the hint text
func (p *PullToRefresh) SetHint(hint string) {
	p.label.SetText(hint)
}

// SetEnabled turns the handle on or off. A disabled handle ignores drags.
func (p *PullToRefresh) SetEnabled(enabled bool) {
	p.enabled = enabled
	if enabled {
		p.icon.SetResource(theme.MoveDownIcon())
	} else {
		p.icon.SetResource(theme.ViewRefreshIcon())
	}
}

// Dragged accumulates the movement of the current drag
func (p *PullToRefresh) Dragged(e *fyne.DragEvent) {
	if p.startedAt.IsZero() {
		p.startedAt = time.Now()
	}
	p.dx += e.Dragged.DX
	p.dy += e.Dragged.DY
}

// DragEnd classifies the finished drag and triggers the refresh
func (p *PullToRefresh) DragEnd() {
	gesture := p.handler.Classify(p.dx, p.dy, time.Since(p.startedAt))
	p.dx, p.dy = 0, 0
	p.startedAt = time.Time{}

	if gesture == GesturePullToRefresh && p.enabled && p.OnRefresh != nil {
		p.OnRefresh()
	}
}

// MinSize keeps the handle a comfortable touch target
func (p *PullToRefresh) MinSize() fyne.Size {
	min := p.BaseWidget.MinSize()
	if min.Height < PullHandleHeight {
		min.Height = PullHandleHeight
	}
	return min
}

// CreateRenderer implements fyne.Widget
func (p *PullToRefresh) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewCenter(container.NewHBox(p.icon, p.label)))
}
