package kzg_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/eos/pkg/curve"
	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/hash"
	"github.com/luxfi/eos/pkg/kzg"
	"github.com/luxfi/eos/pkg/polynomial"
)

func fe(x int64) field.Element {
	if x < 0 {
		return field.FromUint64(uint64(-x)).Neg()
	}
	return field.FromUint64(uint64(x))
}

func TestCommitOpenVerifyRoundTrip(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)

	p := polynomial.New([]field.Element{fe(3), fe(2), fe(1)}) // 3 + 2x + x^2
	cm, err := kzg.Commit(srs, p)
	require.NoError(t, err)

	z := fe(5)
	op, err := kzg.Open(srs, p, z)
	require.NoError(t, err)
	assert.True(t, op.Value.Equal(p.Evaluate(z)))
	assert.True(t, kzg.Verify(srs, cm, op))
}

func TestVerifyRejectsTamperedCommitment(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)
	p := polynomial.New([]field.Element{fe(1), fe(1)})
	cm, err := kzg.Commit(srs, p)
	require.NoError(t, err)
	op, err := kzg.Open(srs, p, fe(2))
	require.NoError(t, err)

	tampered := cm.Add(cm)
	assert.False(t, kzg.Verify(srs, tampered, op))
}

func TestVerifyRejectsTamperedValue(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)
	p := polynomial.New([]field.Element{fe(1), fe(1)})
	cm, err := kzg.Commit(srs, p)
	require.NoError(t, err)
	op, err := kzg.Open(srs, p, fe(2))
	require.NoError(t, err)

	op.Value = op.Value.Add(fe(1))
	assert.False(t, kzg.Verify(srs, cm, op))
}

func TestVerifyRejectsTamperedWitness(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)
	p := polynomial.New([]field.Element{fe(1), fe(1)})
	cm, err := kzg.Commit(srs, p)
	require.NoError(t, err)
	op, err := kzg.Open(srs, p, fe(2))
	require.NoError(t, err)

	op.Witness = op.Witness.Add(op.Witness)
	assert.False(t, kzg.Verify(srs, cm, op))
}

func TestCommitRejectsOverDegree(t *testing.T) {
	srs, err := kzg.Setup(2, rand.Reader)
	require.NoError(t, err)
	p := polynomial.New([]field.Element{fe(1), fe(1), fe(1), fe(1), fe(1)})
	_, err = kzg.Commit(srs, p)
	var degErr kzg.ErrDegreeTooLarge
	assert.ErrorAs(t, err, &degErr)
}

func TestVerifySRSAcceptsGenuineSetup(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)
	assert.NoError(t, kzg.VerifySRS(srs))
}

func TestVerifySRSRejectsInconsistentPowers(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)
	srs.G1Powers[2] = srs.G1Powers[2].Add(srs.G1Powers[0])
	assert.ErrorIs(t, kzg.VerifySRS(srs), kzg.ErrInvalidSRS)
}

func TestBatchOpenVerify(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)

	pw := polynomial.New([]field.Element{fe(1), fe(2)})
	pz := polynomial.New([]field.Element{fe(3), fe(4)})
	ph := polynomial.New([]field.Element{fe(5), fe(6)})
	polys := []polynomial.Polynomial{pw, pz, ph}

	cmW, _ := kzg.Commit(srs, pw)
	cmZ, _ := kzg.Commit(srs, pz)
	cmH, _ := kzg.Commit(srs, ph)

	point := fe(7)

	proverTr := hash.New("kzg-batch-test")
	proverTr.AppendPoint("cm/w", cmW)
	proverTr.AppendPoint("cm/z", cmZ)
	proverTr.AppendPoint("cm/h", cmH)
	op, err := kzg.BatchOpen(srs, polys, point, proverTr)
	require.NoError(t, err)

	verifierTr := hash.New("kzg-batch-test")
	verifierTr.AppendPoint("cm/w", cmW)
	verifierTr.AppendPoint("cm/z", cmZ)
	verifierTr.AppendPoint("cm/h", cmH)
	gamma := verifierTr.Challenge("kzg/batch-gamma")

	combinedCm := kzg.CombineCommitments([]curve.G1{cmW, cmZ, cmH}, gamma)
	combinedValue := kzg.CombineValues([]field.Element{pw.Evaluate(point), pz.Evaluate(point), ph.Evaluate(point)}, gamma)
	assert.True(t, combinedValue.Equal(op.Value))
	assert.True(t, kzg.Verify(srs, combinedCm, op))
}
