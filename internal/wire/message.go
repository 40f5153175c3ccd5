package wire

import "fmt"

// Body is anything that can serialize to one of the four fixed Body
// layouts a Header.Kind selects.
type Body interface {
	MarshalBinary() ([]byte, error)
}

// Message is a full wire frame: Header || Body.
type Message struct {
	Header Header
	Body   Body
}

// Encode concatenates the header and body encodings, as the wire format
// requires.
func Encode(m Message) ([]byte, error) {
	h, err := m.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	b, err := m.Body.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(h, b...), nil
}

// Decode splits raw into a Header and a Kind-appropriate Body.
func Decode(raw []byte) (Header, Body, error) {
	if len(raw) < HeaderLen {
		return Header{}, nil, fmt.Errorf("wire: frame too short: %w", ErrEncoding)
	}
	var h Header
	if err := h.UnmarshalBinary(raw[:HeaderLen]); err != nil {
		return Header{}, nil, err
	}
	rest := raw[HeaderLen:]

	var body Body
	switch h.Kind {
	case KindShare:
		var b ShareBody
		if err := b.UnmarshalBinary(rest); err != nil {
			return Header{}, nil, err
		}
		body = &b
	case KindCommitment:
		var b CommitmentBody
		if err := b.UnmarshalBinary(rest); err != nil {
			return Header{}, nil, err
		}
		body = &b
	case KindOpening:
		var b OpeningBody
		if err := b.UnmarshalBinary(rest); err != nil {
			return Header{}, nil, err
		}
		body = &b
	case KindAbort:
		var b AbortBody
		if err := b.UnmarshalBinary(rest); err != nil {
			return Header{}, nil, err
		}
		body = &b
	default:
		return Header{}, nil, fmt.Errorf("wire: unknown kind %d: %w", h.Kind, ErrEncoding)
	}
	return h, body, nil
}
