package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/eos/pkg/curve"
	"github.com/luxfi/eos/pkg/field"
)

// ShareBody carries one Shamir or additive share point: u16 point ||
// field_bytes(value).
type ShareBody struct {
	Point uint16
	Value field.Element
}

func (b ShareBody) MarshalBinary() ([]byte, error) {
	v, err := b.Value.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 2+len(v))
	binary.BigEndian.PutUint16(buf[0:2], b.Point)
	copy(buf[2:], v)
	return buf, nil
}

func (b *ShareBody) UnmarshalBinary(data []byte) error {
	if len(data) < 3 {
		return fmt.Errorf("wire: share body too short: %w", ErrEncoding)
	}
	b.Point = binary.BigEndian.Uint16(data[0:2])
	if err := b.Value.UnmarshalBinary(data[2:]); err != nil {
		return fmt.Errorf("wire: share body: %w: %v", ErrEncoding, err)
	}
	return nil
}

// CommitmentBody carries a single KZG commitment: g1_bytes(commitment).
type CommitmentBody struct {
	Commitment curve.G1
}

func (b CommitmentBody) MarshalBinary() ([]byte, error) { return b.Commitment.MarshalBinary() }

func (b *CommitmentBody) UnmarshalBinary(data []byte) error {
	if err := b.Commitment.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("wire: commitment body: %w: %v", ErrEncoding, err)
	}
	return nil
}

// OpeningBody carries a KZG opening: u16 point || field_bytes(value) ||
// g1_bytes(witness).
type OpeningBody struct {
	Point   uint16
	Value   field.Element
	Witness curve.G1
}

func (b OpeningBody) MarshalBinary() ([]byte, error) {
	v, err := b.Value.MarshalBinary()
	if err != nil {
		return nil, err
	}
	w, err := b.Witness.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 2+len(v)+len(w))
	binary.BigEndian.PutUint16(buf[0:2], b.Point)
	copy(buf[2:2+len(v)], v)
	copy(buf[2+len(v):], w)
	return buf, nil
}

func (b *OpeningBody) UnmarshalBinary(data []byte) error {
	fieldLen := field.ByteLen()
	if len(data) < 2+fieldLen {
		return fmt.Errorf("wire: opening body too short: %w", ErrEncoding)
	}
	b.Point = binary.BigEndian.Uint16(data[0:2])
	if err := b.Value.UnmarshalBinary(data[2 : 2+fieldLen]); err != nil {
		return fmt.Errorf("wire: opening body value: %w: %v", ErrEncoding, err)
	}
	if err := b.Witness.UnmarshalBinary(data[2+fieldLen:]); err != nil {
		return fmt.Errorf("wire: opening body witness: %w: %v", ErrEncoding, err)
	}
	return nil
}

// AbortBody carries the stable reject reason code of an aborted session.
type AbortBody struct {
	ReasonCode uint8
}

func (b AbortBody) MarshalBinary() ([]byte, error) { return []byte{b.ReasonCode}, nil }

func (b *AbortBody) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("wire: abort body: expected 1 byte, got %d: %w", len(data), ErrEncoding)
	}
	b.ReasonCode = data[0]
	return nil
}
