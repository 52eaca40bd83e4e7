// Package region partitions a terminal frame into the dashboard's fixed panel
// slots and renders a decorated block into each one.
//
// The frame is split into a left and a right column by width percentage, then
// each column is split into its slots by height percentage:
//
//	+---------+-------------------------+
//	| Backend |                         |
//	|---------|        Results          |
//	| Benches |                         |
//	|         |-------------------------|
//	|---------|        Progress         |
//	| Action  |                         |
//	+---------+-------------------------+
//
// Regions are rebuilt from the current frame on every redraw and are only
// obtainable from Build, so a region is never looked up before it has been
// computed.
package region
