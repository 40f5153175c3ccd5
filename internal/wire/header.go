// Package wire implements the party wire format from the external
// interfaces section: a fixed binary Header followed by a Kind-specific
// Body, plus a CBOR envelope for carrying a Message between transports,
// following the pattern of a protocol handler that marshals round content
// with cbor and frames it with routing fields (SSID, From, To).
package wire

import (
	"encoding/binary"
	"fmt"
)

// Kind discriminates a message's Body layout.
type Kind uint16

const (
	KindShare Kind = iota + 1
	KindCommitment
	KindOpening
	KindAbort
)

func (k Kind) String() string {
	switch k {
	case KindShare:
		return "share"
	case KindCommitment:
		return "commitment"
	case KindOpening:
		return "opening"
	case KindAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// HeaderLen is the fixed encoded size of a Header in bytes:
// u16 + u32 + u32 + u8 + u16 + u16.
const HeaderLen = 2 + 4 + 4 + 1 + 2 + 2

// Header precedes every Body on the wire. SharingID names the sharing
// instance a Share/Commitment/Opening belongs to; GateIndex names the
// circuit gate (0 for messages not tied to a gate, e.g. a session-level
// Abort); Round is the sub-protocol round number within that gate.
type Header struct {
	Kind      Kind
	SharingID uint32
	GateIndex uint32
	Round     uint8
	Sender    uint16
	Recipient uint16
}

// MarshalBinary encodes h as the fixed 15-byte wire layout.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderLen)
	binary.BigEndian.PutUint16(buf[0:2], uint16(h.Kind))
	binary.BigEndian.PutUint32(buf[2:6], h.SharingID)
	binary.BigEndian.PutUint32(buf[6:10], h.GateIndex)
	buf[10] = h.Round
	binary.BigEndian.PutUint16(buf[11:13], h.Sender)
	binary.BigEndian.PutUint16(buf[13:15], h.Recipient)
	return buf, nil
}

// UnmarshalBinary decodes the fixed 15-byte wire layout produced by
// MarshalBinary.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) != HeaderLen {
		return fmt.Errorf("wire: header: expected %d bytes, got %d: %w", HeaderLen, len(data), ErrEncoding)
	}
	h.Kind = Kind(binary.BigEndian.Uint16(data[0:2]))
	h.SharingID = binary.BigEndian.Uint32(data[2:6])
	h.GateIndex = binary.BigEndian.Uint32(data[6:10])
	h.Round = data[10]
	h.Sender = binary.BigEndian.Uint16(data[11:13])
	h.Recipient = binary.BigEndian.Uint16(data[13:15])
	return nil
}
