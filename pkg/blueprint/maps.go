package blueprint

import (
	"bytes"
	"encoding/json"

	"github.com/mitchellh/mapstructure"

	"github.com/matzehuels/linden/pkg/errors"
)

// ToMap converts b to nested maps, lists, and numbers. Numbers are
// json.Number values so large seeds survive the trip.
func ToMap(b *Blueprint) (map[string]any, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode blueprint")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode blueprint map")
	}
	return m, nil
}

// FromMap decodes a blueprint from nested maps such as those produced by
// [ToMap] or by a generic JSON/YAML decoder. Unknown keys are rejected. The
// result has defaults applied and is validated.
func FromMap(m map[string]any) (*Blueprint, error) {
	var b Blueprint
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &b,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build map decoder")
	}
	if err := dec.Decode(m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBlueprint, err, "decode blueprint map")
	}

	b.SetDefaults()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
