package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/eos/internal/wire"
	"github.com/luxfi/eos/pkg/curve"
	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/party"
)

func fe(x uint64) field.Element { return field.FromUint64(x) }

func TestHeaderRoundTrip(t *testing.T) {
	h := wire.Header{Kind: wire.KindShare, SharingID: 7, GateIndex: 3, Round: 1, Sender: 2, Recipient: 5}
	data, err := h.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, wire.HeaderLen)

	var got wire.Header
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, h, got)
}

func TestHeaderUnmarshalRejectsWrongLength(t *testing.T) {
	var h wire.Header
	assert.ErrorIs(t, h.UnmarshalBinary([]byte{1, 2, 3}), wire.ErrEncoding)
}

func TestShareMessageRoundTrip(t *testing.T) {
	msg := wire.Message{
		Header: wire.Header{Kind: wire.KindShare, SharingID: 1, GateIndex: 0, Round: 0, Sender: 1, Recipient: 2},
		Body:   wire.ShareBody{Point: 4, Value: fe(123)},
	}
	raw, err := wire.Encode(msg)
	require.NoError(t, err)

	h, body, err := wire.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, msg.Header, h)
	share, ok := body.(*wire.ShareBody)
	require.True(t, ok)
	assert.Equal(t, uint16(4), share.Point)
	assert.True(t, share.Value.Equal(fe(123)))
}

func TestCommitmentMessageRoundTrip(t *testing.T) {
	cm := curve.GeneratorG1().ScalarMul(fe(9))
	msg := wire.Message{
		Header: wire.Header{Kind: wire.KindCommitment, SharingID: 1},
		Body:   wire.CommitmentBody{Commitment: cm},
	}
	raw, err := wire.Encode(msg)
	require.NoError(t, err)

	_, body, err := wire.Decode(raw)
	require.NoError(t, err)
	got, ok := body.(*wire.CommitmentBody)
	require.True(t, ok)
	assert.True(t, got.Commitment.Equal(cm))
}

func TestOpeningMessageRoundTrip(t *testing.T) {
	witness := curve.GeneratorG1().ScalarMul(fe(42))
	msg := wire.Message{
		Header: wire.Header{Kind: wire.KindOpening, GateIndex: 2},
		Body:   wire.OpeningBody{Point: 9, Value: fe(55), Witness: witness},
	}
	raw, err := wire.Encode(msg)
	require.NoError(t, err)

	_, body, err := wire.Decode(raw)
	require.NoError(t, err)
	got, ok := body.(*wire.OpeningBody)
	require.True(t, ok)
	assert.Equal(t, uint16(9), got.Point)
	assert.True(t, got.Value.Equal(fe(55)))
	assert.True(t, got.Witness.Equal(witness))
}

func TestAbortMessageRoundTrip(t *testing.T) {
	msg := wire.Message{
		Header: wire.Header{Kind: wire.KindAbort, Sender: 3},
		Body:   wire.AbortBody{ReasonCode: 4},
	}
	raw, err := wire.Encode(msg)
	require.NoError(t, err)

	_, body, err := wire.Decode(raw)
	require.NoError(t, err)
	got, ok := body.(*wire.AbortBody)
	require.True(t, ok)
	assert.Equal(t, uint8(4), got.ReasonCode)
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	msg := wire.Message{
		Header: wire.Header{Kind: 99},
		Body:   wire.AbortBody{ReasonCode: 1},
	}
	raw, err := wire.Encode(msg)
	require.NoError(t, err)

	_, _, err = wire.Decode(raw)
	assert.ErrorIs(t, err, wire.ErrEncoding)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	msg := wire.Message{
		Header: wire.Header{Kind: wire.KindShare, SharingID: 1, Sender: 1, Recipient: 2},
		Body:   wire.ShareBody{Point: 1, Value: fe(7)},
	}
	raw, err := wire.Encode(msg)
	require.NoError(t, err)

	env := wire.Envelope{SessionID: []byte("session-1"), From: party.ID("w1"), To: party.ID("w2"), Frame: raw}
	data, err := wire.EncodeEnvelope(env)
	require.NoError(t, err)

	got, err := wire.DecodeEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, env.SessionID, got.SessionID)
	assert.Equal(t, env.From, got.From)
	assert.Equal(t, env.To, got.To)
	assert.Equal(t, env.Frame, got.Frame)
}
