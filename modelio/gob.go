package modelio

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/Braden-Griebel/hippotools/model"
)

// The gob form encodes the wire struct, not the live model, so the binary
// format stays decoupled from unexported model internals.

func readGob(r io.Reader) (*model.Model, error) {
	var w wireModel
	if err := gob.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadModel, err)
	}

	return fromWire(&w)
}

func writeGob(w io.Writer, m *model.Model) error {
	return gob.NewEncoder(w).Encode(toWire(m))
}
