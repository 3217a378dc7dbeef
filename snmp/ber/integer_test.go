package ber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeIntegerScenarios(t *testing.T) {
	cases := []struct {
		value int32
		want  []byte
	}{
		{127, []byte{0x02, 0x01, 0x7F}},
		{128, []byte{0x02, 0x02, 0x00, 0x80}},
		{-1, []byte{0x02, 0x01, 0xFF}},
		{-128, []byte{0x02, 0x01, 0x80}},
		{0, []byte{0x02, 0x01, 0x00}},
		{256, []byte{0x02, 0x02, 0x01, 0x00}},
		{-129, []byte{0x02, 0x02, 0xFF, 0x7F}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EncodeInteger(nil, c.value), "value %d", c.value)
	}
}

func TestDecodeIntegerRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 127, 128, -128, -129, 255, 256, 1 << 20, -(1 << 20)} {
		encoded := EncodeInteger(nil, v)
		obj, rest, err := ParseObject(encoded)
		assert.NoError(t, err)
		assert.Empty(t, rest)
		decoded, err := DecodeInteger(obj.Value)
		assert.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestDecodeIntegerRejectsOverlong(t *testing.T) {
	_, err := DecodeInteger([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	assert.ErrorIs(t, err, ErrIntegerOverflow)
}

func TestDecodeIntegerAcceptsCanonicalFiveByteEncoding(t *testing.T) {
	v, err := DecodeInteger([]byte{0x00, 0x80, 0x00, 0x00, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, int32(-2147483648), v)
}

func TestEncodeUnsigned32Gauge(t *testing.T) {
	got := EncodeUnsigned32(nil, Gauge32, 2147483648)
	assert.Equal(t, []byte{0x42, 0x05, 0x00, 0x80, 0x00, 0x00, 0x00}, got)
}

func TestDecodeUnsignedIntegerRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 255, 256, 1<<31 - 1, 1 << 31, ^uint32(0)} {
		encoded := EncodeUnsigned32(nil, Counter32, v)
		obj, rest, err := ParseObject(encoded)
		assert.NoError(t, err)
		assert.Empty(t, rest)
		decoded, err := DecodeUnsignedInteger(obj.Value)
		assert.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestDecodeUnsignedInteger64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 1<<63 - 1, 1 << 63, ^uint64(0)} {
		encoded := EncodeUnsigned64(nil, Counter64, v)
		obj, rest, err := ParseObject(encoded)
		assert.NoError(t, err)
		assert.Empty(t, rest)
		decoded, err := DecodeUnsignedInteger64(obj.Value)
		assert.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestDecodeUnsignedIntegerRejectsNonCanonicalPadding(t *testing.T) {
	_, err := DecodeUnsignedInteger([]byte{0x01, 0x00, 0x00, 0x00, 0x01})
	assert.ErrorIs(t, err, ErrIntegerOverflow)
}

func TestDecodeIntegerRejectsEmptyValue(t *testing.T) {
	_, err := DecodeInteger(nil)
	assert.ErrorIs(t, err, ErrIncompleteData)
}
