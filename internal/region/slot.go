package region

import "fmt"

// SlotInfo is the static metadata of a panel slot.
type SlotInfo struct {
	Index         int    // position within the column's rectangle sequence
	Title         string // panel title
	HeightPercent int    // share of the column height
	Hotkey        rune   // display hint only
}

// ColumnInfo is the static metadata of a column.
type ColumnInfo struct {
	Name         string
	WidthPercent int // share of the frame width
}

// Slot is a closed set of panel positions belonging to one column.
type Slot interface {
	comparable
	Info() SlotInfo
	Column() ColumnInfo
}

// LeftSlot identifies a panel in the left column.
type LeftSlot int

const (
	LeftTop LeftSlot = iota
	LeftMiddle
	LeftBottom
)

// leftWidthPercent is the left column's share of the frame width; the right
// column takes the rest.
const leftWidthPercent = 25

// LeftSlots returns every left slot in declared order.
func LeftSlots() []LeftSlot {
	return []LeftSlot{LeftTop, LeftMiddle, LeftBottom}
}

// Column implements Slot.
func (LeftSlot) Column() ColumnInfo {
	return ColumnInfo{Name: "left", WidthPercent: leftWidthPercent}
}

// Info implements Slot.
func (s LeftSlot) Info() SlotInfo {
	switch s {
	case LeftTop:
		return SlotInfo{Index: 0, Title: "Backend", HeightPercent: 30, Hotkey: 'b'}
	case LeftMiddle:
		return SlotInfo{Index: 1, Title: "Benches", HeightPercent: 60, Hotkey: 'n'}
	case LeftBottom:
		return SlotInfo{Index: 2, Title: "Action", HeightPercent: 10, Hotkey: 'a'}
	}
	panic(fmt.Sprintf("region: unknown left slot %d", int(s)))
}

func (s LeftSlot) String() string {
	switch s {
	case LeftTop:
		return "LeftTop"
	case LeftMiddle:
		return "LeftMiddle"
	case LeftBottom:
		return "LeftBottom"
	}
	return fmt.Sprintf("LeftSlot(%d)", int(s))
}

// RightSlot identifies a panel in the right column.
type RightSlot int

const (
	RightTop RightSlot = iota
	RightBottom
)

// RightSlots returns every right slot in declared order.
func RightSlots() []RightSlot {
	return []RightSlot{RightTop, RightBottom}
}

// Column implements Slot.
func (RightSlot) Column() ColumnInfo {
	return ColumnInfo{Name: "right", WidthPercent: 100 - LeftTop.Column().WidthPercent}
}

// Info implements Slot.
func (s RightSlot) Info() SlotInfo {
	switch s {
	case RightTop:
		return SlotInfo{Index: 0, Title: "Results", HeightPercent: 90, Hotkey: 'r'}
	case RightBottom:
		return SlotInfo{Index: 1, Title: "Progress", HeightPercent: 10, Hotkey: 'p'}
	}
	panic(fmt.Sprintf("region: unknown right slot %d", int(s)))
}

func (s RightSlot) String() string {
	switch s {
	case RightTop:
		return "RightTop"
	case RightBottom:
		return "RightBottom"
	}
	return fmt.Sprintf("RightSlot(%d)", int(s))
}

// heightPercents returns the slots' height shares in declared order.
func heightPercents[S Slot](slots []S) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = s.Info().HeightPercent
	}
	return out
}
