package modelio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Braden-Griebel/hippotools/model"
)

func readYAML(r io.Reader) (*model.Model, error) {
	var w wireModel
	if err := yaml.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadModel, err)
	}

	return fromWire(&w)
}

func writeYAML(w io.Writer, m *model.Model) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(toWire(m))
}
