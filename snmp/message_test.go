package snmp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/damianoneill/go-snmp/snmp/ber"
)

// TestEncodeMessageRoundTrip encodes a GetRequest for sysDescr.0 (the request
// of spec.md §8 scenario 1) in the community/version envelope and parses it
// back; it builds the packet with encodeMessage rather than using literal
// scenario bytes.
func TestEncodeMessageRoundTrip(t *testing.T) {
	pdu := newGetRequest(1, [][]uint32{{1, 3, 6, 1, 2, 1, 1, 1, 0}})
	encoded := encodeMessage("public", pdu)

	msg, err := parseMessage(encoded)
	assert.NoError(t, err)
	assert.Equal(t, int32(snmpV2c), msg.Version)
	assert.Equal(t, "public", msg.Community)
	assert.Equal(t, ber.GetRequest, msg.PDU.Tag)
	assert.Equal(t, int32(1), msg.PDU.RequestID)
}

// TestParseMessageRejectsTrailingData covers spec.md §8 scenario 6: extra
// bytes appended after a complete, well-formed message must be rejected.
func TestParseMessageRejectsTrailingData(t *testing.T) {
	pdu := newGetRequest(1, [][]uint32{{1, 3, 6, 1, 2, 1, 1, 1, 0}})
	encoded := encodeMessage("public", pdu)
	encoded = append(encoded, 0x00, 0x01, 0x02)

	_, err := parseMessage(encoded)
	assert.ErrorIs(t, err, ber.ErrTrailingData)
}

func TestParseMessageRejectsWrongVersionTag(t *testing.T) {
	// Community encoded where an Integer is expected.
	bad := ber.EncodeSequence(nil, func(inner []byte) []byte {
		inner = append(inner, 0x04, 0x01, 0x00) // OctetString masquerading as version
		inner = append(inner, 0x04, 0x06, 'p', 'u', 'b', 'l', 'i', 'c')
		return inner
	})
	_, err := parseMessage(bad)
	var unexpected *ber.UnexpectedTagError
	assert.ErrorAs(t, err, &unexpected)
}

func TestParseMessageRejectsIncompleteEnvelope(t *testing.T) {
	_, err := parseMessage([]byte{0x30, 0x02, 0x02, 0x01})
	assert.Error(t, err)
}
