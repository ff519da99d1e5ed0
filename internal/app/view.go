package app

import (
	"fmt"

	"example.com/jotr/pkg/config"
)

// SetZoom sets the zoom percentage. Values outside
// [config.MinZoom, config.MaxZoom] are rejected and leave zoom unchanged.
func (r *Runner) SetZoom(zoom int) error {
	if zoom < config.MinZoom || zoom > config.MaxZoom {
		return fmt.Errorf("zoom %d%% out of range [%d%%, %d%%]", zoom, config.MinZoom, config.MaxZoom)
	}
	r.View.Zoom = zoom
	r.Logger.Event("action", map[string]any{"name": "zoom", "zoom": zoom})
	r.ensureCursorVisible()
	return nil
}

// ZoomIn increases zoom by one step.
func (r *Runner) ZoomIn() {
	r.stepZoom(config.ZoomStep)
}

// ZoomOut decreases zoom by one step.
func (r *Runner) ZoomOut() {
	r.stepZoom(-config.ZoomStep)
}

func (r *Runner) stepZoom(delta int) {
	if err := r.SetZoom(r.View.Zoom + delta); err != nil {
		r.setStatus(err.Error())
	}
}

// ResetZoom restores the default zoom.
func (r *Runner) ResetZoom() {
	_ = r.SetZoom(config.DefaultZoom)
}

// ToggleWordWrap switches soft wrapping of long lines.
func (r *Runner) ToggleWordWrap() {
	r.View.WordWrap = !r.View.WordWrap
	r.LeftCol = 0
	r.ensureCursorVisible()
}

// ToggleStatusBar shows or hides the status bar.
func (r *Runner) ToggleStatusBar() {
	r.View.StatusBar = !r.View.StatusBar
}

// tabWidth is the configured tab stop scaled by zoom, at least one cell.
func (r *Runner) tabWidth() int {
	tw := r.View.TabWidth
	if tw < 1 {
		tw = 4
	}
	return max(1, tw*r.View.Zoom/100)
}
