package snmp

import (
	"github.com/damianoneill/go-snmp/snmp/ber"
)

// snmpV2c is the version octet value for the one protocol version this
// manager speaks (spec.md §3/§4.6: SNMPv2c, Non-goal: v1 and v3).
const snmpV2c int32 = 1

// message is the outermost SNMPv2c wire envelope: SEQUENCE { version
// INTEGER, community OCTET STRING, data PDU }. Grounded in
// original_source/src/snmp/message.rs::Message.
type message struct {
	Version   int32
	Community string
	PDU       PDU
}

// writeToBuf appends the full BER encoding of the message to buf.
func (m message) writeToBuf(buf []byte) []byte {
	return ber.EncodeSequence(buf, func(inner []byte) []byte {
		inner = ber.EncodeInteger(inner, m.Version)
		inner = encodeOctetString(inner, []byte(m.Community))
		return m.PDU.writeToBuf(inner)
	})
}

// encodeMessage serialises a full SNMPv2c message for the given community
// and PDU.
func encodeMessage(community string, pdu PDU) []byte {
	m := message{Version: snmpV2c, Community: community, PDU: pdu}
	return m.writeToBuf(nil)
}

// parseMessage decodes a full SNMPv2c message, verifying field tags at
// every step and rejecting any trailing bytes once the PDU has been fully
// consumed (spec.md §8 scenario 6). Grounded in
// original_source/src/snmp/message.rs::Message::from_ber.
func parseMessage(input []byte) (message, error) {
	seq, rest, err := ber.ParseObject(input)
	if err != nil {
		return message{}, err
	}
	if err := seq.Expect(ber.Sequence); err != nil {
		return message{}, err
	}
	if len(rest) != 0 {
		return message{}, ber.ErrTrailingData
	}

	body := seq.Value

	versionObj, body, err := ber.ParseObject(body)
	if err != nil {
		return message{}, err
	}
	if err := versionObj.Expect(ber.Integer); err != nil {
		return message{}, err
	}
	version, err := ber.DecodeInteger(versionObj.Value)
	if err != nil {
		return message{}, err
	}

	communityObj, body, err := ber.ParseObject(body)
	if err != nil {
		return message{}, err
	}
	if err := communityObj.Expect(ber.OctetString); err != nil {
		return message{}, err
	}

	pdu, body, err := parsePDU(body)
	if err != nil {
		return message{}, err
	}
	if len(body) != 0 {
		return message{}, ber.ErrTrailingData
	}

	return message{
		Version:   version,
		Community: string(communityObj.Value),
		PDU:       pdu,
	}, nil
}
