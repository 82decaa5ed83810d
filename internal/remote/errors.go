package remote

import (
	"errors"
	"fmt"
)

var (
	ErrSlotOutOfRange  = errors.New("slot out of range")
	ErrInvalidCapacity = errors.New("remote needs at least one slot")
)

// SlotError reports a slot index outside [0, Capacity).
type SlotError struct {
	Slot     int
	Capacity int
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %d out of range [0, %d)", e.Slot, e.Capacity)
}

func (e *SlotError) Unwrap() error {
	return ErrSlotOutOfRange
}
