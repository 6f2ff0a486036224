package standings

import "errors"

var (
	ErrMalformedRecord    = errors.New("malformed record")
	ErrSlotBoardFull      = errors.New("slot board is full")
	ErrDuplicateSlotEntry = errors.New("entry already holds a slot")
	ErrSlotOutOfRange     = errors.New("slot index out of range")
	ErrInvalidSlotEntry   = errors.New("slot entry is required")
)
