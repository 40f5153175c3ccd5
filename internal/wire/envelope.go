package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/eos/pkg/party"
)

// Envelope frames a raw wire Message with routing metadata for a
// transport, mirroring a protocol.Message shape (SSID/From/To/Data),
// but CBOR-encoded as a structured payload rather than the fixed binary
// layout reserved for Header||Body itself.
type Envelope struct {
	SessionID []byte
	From      party.ID
	To        party.ID
	Frame     []byte
}

// EncodeEnvelope CBOR-marshals env for transport.
func EncodeEnvelope(env Envelope) ([]byte, error) {
	data, err := cbor.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("wire: marshal envelope: %w", err)
	}
	return data, nil
}

// DecodeEnvelope reverses EncodeEnvelope.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("wire: unmarshal envelope: %w: %v", ErrEncoding, err)
	}
	return env, nil
}
