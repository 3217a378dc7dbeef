package ber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseObject(t *testing.T) {
	obj, rest, err := ParseObject([]byte{0x02, 0x01, 0x05, 0xAA})
	assert.NoError(t, err)
	assert.Equal(t, Integer, obj.Tag)
	assert.Equal(t, 2, obj.HeaderLen)
	assert.Equal(t, 1, obj.ValueLen)
	assert.Equal(t, []byte{0x05}, obj.Value)
	assert.Equal(t, []byte{0xAA}, rest)
}

func TestParseObjectIncompleteValue(t *testing.T) {
	_, _, err := ParseObject([]byte{0x02, 0x05, 0x01})
	assert.ErrorIs(t, err, ErrIncompleteData)
}

func TestObjectExpect(t *testing.T) {
	obj, _, err := ParseObject([]byte{0x02, 0x01, 0x05})
	assert.NoError(t, err)
	assert.NoError(t, obj.Expect(Integer))

	err = obj.Expect(OctetString)
	var unexpected *UnexpectedTagError
	assert.ErrorAs(t, err, &unexpected)
	assert.Equal(t, OctetString, unexpected.Expected)
	assert.Equal(t, Integer, unexpected.Got)
}

func TestEncodeContainer(t *testing.T) {
	got := EncodeContainer(nil, Sequence, func(inner []byte) []byte {
		return append(inner, 0x02, 0x01, 0x05)
	})
	assert.Equal(t, []byte{0x30, 0x03, 0x02, 0x01, 0x05}, got)
}

func TestEncodeSequenceEmpty(t *testing.T) {
	got := EncodeSequence(nil, func(inner []byte) []byte { return inner })
	assert.Equal(t, []byte{0x30, 0x00}, got)
}
