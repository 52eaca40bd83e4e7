package dashboard

import (
	"fmt"
	"image"

	"benchdash/internal/region"
	"benchdash/internal/ui"
)

// Layout exposes the dashboard slots as ui panels.
type Layout struct{}

// Ensure Layout implements ui.Layout.
var _ ui.Layout = Layout{}

// Panels returns one panel per slot, in draw order.
func (Layout) Panels() []ui.Panel {
	var panels []ui.Panel
	for _, s := range region.LeftSlots() {
		panels = append(panels, slotPanel(s, func(rs region.Regions) region.Region[region.LeftSlot] { return rs.Left }))
	}
	for _, s := range region.RightSlots() {
		panels = append(panels, slotPanel(s, func(rs region.Regions) region.Region[region.RightSlot] { return rs.Right }))
	}
	return panels
}

// DrawOrder implements ui.Layout.
func (l Layout) DrawOrder() []string {
	panels := l.Panels()
	ids := make([]string, len(panels))
	for i, p := range panels {
		ids[i] = p.ID
	}
	return ids
}

func slotPanel[S region.Slot](slot S, column func(region.Regions) region.Region[S]) ui.Panel {
	return ui.Panel{
		ID:    fmt.Sprint(slot),
		Title: region.BlockTitle(slot.Info()),
		Bounds: func(width, height int) (x, y, w, h int) {
			r := column(region.Build(image.Rect(0, 0, width, height))).Rect(slot)
			return r.Min.X, r.Min.Y, r.Dx(), r.Dy()
		},
	}
}
