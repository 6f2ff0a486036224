package standings

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/player"
)

// SlotBoard is a fixed set of optional entries, as used for award places.
// An entry holds at most one slot, compared by player.NameKey, and the board
// never grows past its cap.
// Every operation returns a new board; the receiver is left untouched.
type SlotBoard struct {
	slots    []string
	maxSlots int
}

// NewSlotBoard creates size empty slots that may grow to maxSlots.
func NewSlotBoard(size, maxSlots int) SlotBoard {
	if size < 0 {
		size = 0
	}
	if maxSlots < size {
		maxSlots = size
	}
	return SlotBoard{slots: make([]string, size), maxSlots: maxSlots}
}

// RestoreSlotBoard rebuilds a board from stored slots. Blank entries are
// empty slots; a repeated entry keeps only its first slot.
func RestoreSlotBoard(slots []string, maxSlots int) SlotBoard {
	if maxSlots < len(slots) {
		maxSlots = len(slots)
	}
	out := make([]string, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for i, s := range slots {
		entry := strings.TrimSpace(s)
		if entry == "" {
			continue
		}
		key := player.NameKey(entry)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out[i] = entry
	}
	return SlotBoard{slots: out, maxSlots: maxSlots}
}

func (b SlotBoard) Slots() []string {
	out := make([]string, len(b.slots))
	copy(out, b.slots)
	return out
}

func (b SlotBoard) Len() int      { return len(b.slots) }
func (b SlotBoard) MaxSlots() int { return b.maxSlots }

func (b SlotBoard) Occupied() int {
	n := 0
	for _, s := range b.slots {
		if s != "" {
			n++
		}
	}
	return n
}

func (b SlotBoard) IndexOf(entry string) int {
	key := player.NameKey(entry)
	if key == "" {
		return -1
	}
	for i, s := range b.slots {
		if s != "" && player.NameKey(s) == key {
			return i
		}
	}
	return -1
}

// AssignFirstEmpty puts entry into the lowest empty slot and returns its index.
func (b SlotBoard) AssignFirstEmpty(entry string) (SlotBoard, int, error) {
	entry, err := b.checkEntry(entry)
	if err != nil {
		return b, -1, err
	}
	for i, s := range b.slots {
		if s == "" {
			next := b.clone()
			next.slots[i] = entry
			return next, i, nil
		}
	}
	return b, -1, fmt.Errorf("%w: %d of %d slots occupied", ErrSlotBoardFull, b.Occupied(), len(b.slots))
}

// AppendSlot adds a new slot holding entry, up to the board's cap.
func (b SlotBoard) AppendSlot(entry string) (SlotBoard, int, error) {
	entry, err := b.checkEntry(entry)
	if err != nil {
		return b, -1, err
	}
	if len(b.slots) >= b.maxSlots {
		return b, -1, fmt.Errorf("%w: cap of %d slots reached", ErrSlotBoardFull, b.maxSlots)
	}
	next := b.clone()
	next.slots = append(next.slots, entry)
	return next, len(next.slots) - 1, nil
}

// Clear empties the slot at index.
func (b SlotBoard) Clear(index int) (SlotBoard, error) {
	if index < 0 || index >= len(b.slots) {
		return b, fmt.Errorf("%w: index=%d len=%d", ErrSlotOutOfRange, index, len(b.slots))
	}
	next := b.clone()
	next.slots[index] = ""
	return next, nil
}

func (b SlotBoard) checkEntry(entry string) (string, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return "", ErrInvalidSlotEntry
	}
	if b.IndexOf(entry) >= 0 {
		return "", fmt.Errorf("%w: %s", ErrDuplicateSlotEntry, entry)
	}
	return entry, nil
}

func (b SlotBoard) clone() SlotBoard {
	return SlotBoard{slots: b.Slots(), maxSlots: b.maxSlots}
}
