package taibf

import (
	"encoding/gob"
	"fmt"
	"io"
)

func (t *Tape) GobEncode() ([]byte, error) {
	return t.Cells(), nil
}

func (t *Tape) GobDecode(data []byte) error {
	t.cells = make([]byte, len(data))
	copy(t.cells, data)
	return nil
}

func (s *State) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return nil
}

func (s *State) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	var restored State
	if err := dec.Decode(&restored); err != nil {
		return err
	}
	if restored.Pointer < 0 {
		return fmt.Errorf("restore state: negative pointer %d", restored.Pointer)
	}
	if restored.Tape == nil {
		restored.Tape = NewTape()
	}
	*s = restored
	return nil
}
