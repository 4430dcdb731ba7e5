package binbuf

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// jsonType is the discriminator of the JSON form.
const jsonType = "Buffer"

// JSON is the interchange form {"type":"Buffer","data":[...]}. The same
// shape is used for YAML and accepted when decoding CBOR.
type JSON struct {
	Type string `json:"type" yaml:"type" cbor:"type"`
	Data []int  `json:"data" yaml:"data" cbor:"data"`
}

// jsonWire decodes data leniently; elements become bytes through ToUint8.
type jsonWire struct {
	Type string    `json:"type" yaml:"type" cbor:"type"`
	Data []float64 `json:"data" yaml:"data" cbor:"data"`
}

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("binbuf: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("binbuf: CBOR decoder initialization failed: " + err.Error())
	}
}

// ToJSON returns the interchange form of b.
func (b *Buffer) ToJSON() JSON {
	data := make([]int, b.Len())
	for i, c := range b.Bytes() {
		data[i] = int(c)
	}
	return JSON{Type: jsonType, Data: data}
}

// FromJSON rebuilds a buffer from its interchange form.
func FromJSON(obj JSON) (*Buffer, error) {
	if obj.Type != jsonType {
		return nil, fmt.Errorf("%w: type %q, want %q", ErrInvalidArgument, obj.Type, jsonType)
	}
	return FromArray(obj.Data)
}

func (w jsonWire) buffer() (*Buffer, error) {
	if w.Type != jsonType {
		return nil, fmt.Errorf("%w: type %q, want %q", ErrInvalidArgument, w.Type, jsonType)
	}
	return fromFloats(w.Data), nil
}

func (b *Buffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ToJSON())
}

// UnmarshalJSON replaces b with a new buffer decoded from the JSON form.
func (b *Buffer) UnmarshalJSON(data []byte) error {
	var w jsonWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	nb, err := w.buffer()
	if err != nil {
		return err
	}
	*b = *nb
	return nil
}

func (b *Buffer) MarshalYAML() (any, error) {
	return b.ToJSON(), nil
}

func (b *Buffer) UnmarshalYAML(value *yaml.Node) error {
	var w jsonWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	nb, err := w.buffer()
	if err != nil {
		return err
	}
	*b = *nb
	return nil
}

// MarshalCBOR encodes b as a CBOR byte string.
func (b *Buffer) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(nonNil(b.Bytes()))
}

// UnmarshalCBOR accepts a CBOR byte string or the {type, data} map.
func (b *Buffer) UnmarshalCBOR(data []byte) error {
	var p []byte
	if err := cborDec.Unmarshal(data, &p); err == nil {
		*b = *wrap(nonNil(p))
		return nil
	}
	var w jsonWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return err
	}
	nb, err := w.buffer()
	if err != nil {
		return err
	}
	*b = *nb
	return nil
}
