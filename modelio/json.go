package modelio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Braden-Griebel/hippotools/model"
)

func readJSON(r io.Reader) (*model.Model, error) {
	var w wireModel
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadModel, err)
	}

	return fromWire(&w)
}

func writeJSON(w io.Writer, m *model.Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(toWire(m))
}
