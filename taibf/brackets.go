package taibf

// Pair is a matched loop, by character offset.
type Pair struct {
	Open  int
	Close int
}

// Brackets maps every loop bracket of a program to its partner.
type Brackets struct {
	pairs []Pair
	// offset -> paired offset, -1 for non-bracket offsets
	jumps []int
}

func ParseBrackets(program []rune) (*Brackets, error) {
	ret := &Brackets{
		jumps: make([]int, len(program)),
	}
	var stack []int
	for offset, r := range program {
		ret.jumps[offset] = -1
		switch r {
		case '[':
			stack = append(stack, offset)
		case ']':
			if len(stack) == 0 {
				return nil, withPos(ErrMismatchedBraces, program, offset)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ret.jumps[open] = offset
			ret.jumps[offset] = open
			ret.pairs = append(ret.pairs, Pair{
				Open:  open,
				Close: offset,
			})
		}
	}
	if len(stack) > 0 {
		return nil, withPos(ErrMismatchedBraces, program, stack[len(stack)-1])
	}
	return ret, nil
}

// Match returns the offset paired with the bracket at offset.
func (b *Brackets) Match(offset int) (int, bool) {
	if offset < 0 || offset >= len(b.jumps) {
		return 0, false
	}
	target := b.jumps[offset]
	if target < 0 {
		return 0, false
	}
	return target, true
}

// Pairs lists matched loops in the order they were closed.
func (b *Brackets) Pairs() []Pair {
	ret := make([]Pair, len(b.pairs))
	copy(ret, b.pairs)
	return ret
}

func (b *Brackets) mustMatch(offset int) int {
	target, ok := b.Match(offset)
	if !ok {
		panic("taibf: unpaired bracket after validation")
	}
	return target
}
