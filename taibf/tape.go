package taibf

// Tape is a zero-initialized byte store that grows to the right on write.
type Tape struct {
	cells []byte
}

func NewTape() *Tape {
	return &Tape{}
}

// Read returns the byte at index, or zero if index was never materialized.
func (t *Tape) Read(index int) byte {
	if t == nil || index < 0 || index >= len(t.cells) {
		return 0
	}
	return t.cells[index]
}

// Write stores value at index, zero-filling any cells exposed by growth.
func (t *Tape) Write(index int, value byte) {
	if index < 0 {
		panic("taibf: negative tape index")
	}
	if index >= len(t.cells) {
		t.grow(index + 1)
	}
	t.cells[index] = value
}

func (t *Tape) grow(n int) {
	if n <= cap(t.cells) {
		t.cells = t.cells[:n]
		return
	}
	newCap := cap(t.cells) * 2
	if newCap < n {
		newCap = n
	}
	if newCap < 32 {
		newCap = 32
	}
	cells := make([]byte, n, newCap)
	copy(cells, t.cells)
	t.cells = cells
}

func (t *Tape) Len() int {
	if t == nil {
		return 0
	}
	return len(t.cells)
}

func (t *Tape) Cells() []byte {
	if t == nil {
		return nil
	}
	ret := make([]byte, len(t.cells))
	copy(ret, t.cells)
	return ret
}
