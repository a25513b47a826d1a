package board

import "fmt"

// Mailbox is a dense square-to-slot array. Variants embed it to get the
// occupancy primitives of the Board contract with range checking.
type Mailbox[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color] struct {
	slots []Slot[P, C]
}

// NewMailbox returns an empty mailbox for variant G, or ErrCapacityExceeded if
// the variant's square count does not fit in S.
func NewMailbox[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color]() (*Mailbox[G, S, F, R, P, C], error) {
	side := sideLen[G, S, F, R]()
	if err := CheckCapacity(side); err != nil {
		return nil, err
	}
	return &Mailbox[G, S, F, R, P, C]{
		slots: make([]Slot[P, C], int(side)*int(side)),
	}, nil
}

// MustMailbox is like NewMailbox but panics if the capacity check fails.
func MustMailbox[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color]() *Mailbox[G, S, F, R, P, C] {
	mb, err := NewMailbox[G, S, F, R, P, C]()
	if err != nil {
		panic(err)
	}
	return mb
}

// SideLen returns the number of squares along one axis.
func (mb *Mailbox[G, S, F, R, P, C]) SideLen() S {
	return sideLen[G, S, F, R]()
}

// Len returns the number of squares.
func (mb *Mailbox[G, S, F, R, P, C]) Len() int {
	return len(mb.slots)
}

// Squares enumerates every square in ascending linear order.
func (mb *Mailbox[G, S, F, R, P, C]) Squares() *SquareIter[G, S, F, R] {
	return AllSquares[G, S, F, R]()
}

func (mb *Mailbox[G, S, F, R, P, C]) index(pos Square[G, S, F, R]) (int, error) {
	if uint64(pos.pos) >= uint64(len(mb.slots)) {
		return 0, fmt.Errorf("%w: index %d, board has %d squares", ErrOutOfRange, pos.pos, len(mb.slots))
	}
	return int(pos.pos), nil
}

// Get returns the slot at pos.
func (mb *Mailbox[G, S, F, R, P, C]) Get(pos Square[G, S, F, R]) (Slot[P, C], error) {
	i, err := mb.index(pos)
	if err != nil {
		return Slot[P, C]{}, err
	}
	return mb.slots[i], nil
}

// Set stores slot at pos and returns the slot it replaced.
func (mb *Mailbox[G, S, F, R, P, C]) Set(pos Square[G, S, F, R], slot Slot[P, C]) (Slot[P, C], error) {
	i, err := mb.index(pos)
	if err != nil {
		return Slot[P, C]{}, err
	}
	prev := mb.slots[i]
	mb.slots[i] = slot
	return prev, nil
}

// Swap exchanges the slot at pos with *slot.
func (mb *Mailbox[G, S, F, R, P, C]) Swap(pos Square[G, S, F, R], slot *Slot[P, C]) error {
	i, err := mb.index(pos)
	if err != nil {
		return err
	}
	mb.slots[i], *slot = *slot, mb.slots[i]
	return nil
}

// At returns the slot at pos, or an empty slot if pos is off the board.
func (mb *Mailbox[G, S, F, R, P, C]) At(pos Square[G, S, F, R]) Slot[P, C] {
	i, err := mb.index(pos)
	if err != nil {
		return Slot[P, C]{}
	}
	return mb.slots[i]
}

// Clear empties every square.
func (mb *Mailbox[G, S, F, R, P, C]) Clear() {
	clear(mb.slots)
}

// Clone returns an independent copy of the mailbox.
func (mb *Mailbox[G, S, F, R, P, C]) Clone() *Mailbox[G, S, F, R, P, C] {
	slots := make([]Slot[P, C], len(mb.slots))
	copy(slots, mb.slots)
	return &Mailbox[G, S, F, R, P, C]{slots: slots}
}
