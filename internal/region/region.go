package region

import (
	"fmt"
	"image"
)

// Region is a column of the dashboard together with the rectangles computed
// for its slots on the current frame.
type Region[S Slot] struct {
	info  ColumnInfo
	slots []S
	rects []image.Rectangle
}

func newRegion[S Slot](area image.Rectangle, slots []S) Region[S] {
	var zero S
	return Region[S]{
		info:  zero.Column(),
		slots: slots,
		rects: Split(area, Vertical, heightPercents(slots)),
	}
}

// Info returns the column metadata.
func (r Region[S]) Info() ColumnInfo { return r.info }

// Slots returns the column's slots in declared order.
func (r Region[S]) Slots() []S {
	return append([]S(nil), r.slots...)
}

// Rects returns a copy of the column's rectangles, indexed by slot ordinal.
func (r Region[S]) Rects() []image.Rectangle {
	return append([]image.Rectangle(nil), r.rects...)
}

// Rect returns the rectangle computed for slot.
func (r Region[S]) Rect(slot S) image.Rectangle {
	idx := slot.Info().Index
	if idx < 0 || idx >= len(r.rects) {
		panic(fmt.Sprintf("region: %s slot %v has index %d, region holds %d rects",
			r.info.Name, slot, idx, len(r.rects)))
	}
	return r.rects[idx]
}

// Block returns the decorated panel for slot.
func (r Region[S]) Block(slot S) Block {
	return NewBlock(slot.Info())
}

// Bounds returns the area covered by the whole column.
func (r Region[S]) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, rect := range r.rects {
		b = b.Union(rect)
	}
	return b
}

// Regions holds both dashboard columns for one frame.
type Regions struct {
	Frame image.Rectangle
	Left  Region[LeftSlot]
	Right Region[RightSlot]
}

// Build computes every slot rectangle for frame. It is a pure function of
// the frame and is meant to be called on every redraw.
func Build(frame image.Rectangle) Regions {
	columns := Split(frame, Horizontal, []int{
		LeftTop.Column().WidthPercent,
		RightTop.Column().WidthPercent,
	})
	return Regions{
		Frame: frame,
		Left:  newRegion(columns[0], LeftSlots()),
		Right: newRegion(columns[1], RightSlots()),
	}
}

// Placement is a slot's title and rectangle.
type Placement struct {
	ID    string
	Title string
	Rect  image.Rectangle
}

// Placements lists every slot in draw order: the left column top to bottom,
// then the right column top to bottom.
func (rs Regions) Placements() []Placement {
	out := make([]Placement, 0, len(rs.Left.slots)+len(rs.Right.slots))
	out = appendPlacements(out, rs.Left)
	return appendPlacements(out, rs.Right)
}

func appendPlacements[S Slot](out []Placement, r Region[S]) []Placement {
	for _, s := range r.slots {
		out = append(out, Placement{
			ID:    fmt.Sprint(s),
			Title: r.Block(s).Title,
			Rect:  r.Rect(s),
		})
	}
	return out
}

// Surface accepts rendered content for a rectangle of the frame.
type Surface interface {
	Render(area image.Rectangle, content string)
}

// Draw renders every slot's block into its rectangle, in the same order as
// Placements.
func (rs Regions) Draw(s Surface) {
	drawRegion(s, rs.Left)
	drawRegion(s, rs.Right)
}

func drawRegion[S Slot](surface Surface, r Region[S]) {
	for _, slot := range r.slots {
		rect := r.Rect(slot)
		surface.Render(rect, r.Block(slot).Render(rect.Dx(), rect.Dy()))
	}
}
