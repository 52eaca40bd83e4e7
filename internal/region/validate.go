package region

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyColumn is returned when a column declares no slots.
	ErrEmptyColumn = errors.New("column has no slots")
	// ErrPercentSum is returned when percentages do not add up to 100.
	ErrPercentSum = errors.New("percentages do not sum to 100")
	// ErrNegativePercent is returned for a negative width or height share.
	ErrNegativePercent = errors.New("negative percentage")
	// ErrSlotIndex is returned when slot indices are not 0..N-1 in order.
	ErrSlotIndex = errors.New("slot index out of sequence")
)

// Validate checks the static layout tables: both columns' widths sum to 100,
// each column has slots whose heights sum to 100, and slot indices match their
// declared positions.
func Validate() error {
	left, right := LeftTop.Column(), RightTop.Column()
	if err := validatePercents("column widths", []int{left.WidthPercent, right.WidthPercent}); err != nil {
		return err
	}
	if err := validateColumn(LeftSlots()); err != nil {
		return err
	}
	return validateColumn(RightSlots())
}

func validateColumn[S Slot](slots []S) error {
	var zero S
	name := zero.Column().Name
	if len(slots) == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptyColumn)
	}
	for i, s := range slots {
		if got := s.Info().Index; got != i {
			return fmt.Errorf("%s: slot %q has index %d at position %d: %w", name, s.Info().Title, got, i, ErrSlotIndex)
		}
	}
	return validatePercents(name+" slot heights", heightPercents(slots))
}

func validatePercents(what string, percents []int) error {
	if len(percents) == 0 {
		return fmt.Errorf("%s: %w", what, ErrEmptyColumn)
	}
	sum := 0
	for _, p := range percents {
		if p < 0 {
			return fmt.Errorf("%s: %d: %w", what, p, ErrNegativePercent)
		}
		sum += p
	}
	if sum != 100 {
		return fmt.Errorf("%s: got %d: %w", what, sum, ErrPercentSum)
	}
	return nil
}

func init() {
	if err := Validate(); err != nil {
		panic("region: invalid layout: " + err.Error())
	}
}
