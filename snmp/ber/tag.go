package ber

import "fmt"

// Tag is the closed set of BER tag bytes this manager recognises, spanning
// the universal ASN.1 types, the SNMP application-specific types, the
// context-specific PDU wrappers, and the three exception markers.
//
// Refer to http://luca.ntop.org/Teaching/Appunti/asn1.html for the BER tag
// byte layout: class (bits 8-7), primitive/constructed (bit 6), and tag
// number (bits 5-1).
type Tag byte

// Universal ASN.1 tags.
const (
	Integer          Tag = 0x02
	OctetString      Tag = 0x04
	Null             Tag = 0x05
	ObjectIdentifier Tag = 0x06
	Sequence         Tag = 0x30
)

// Application-specific SNMP tags.
const (
	IPAddress Tag = 0x40
	Counter32 Tag = 0x41
	Gauge32   Tag = 0x42
	TimeTicks Tag = 0x43
	Opaque    Tag = 0x44
	Counter64 Tag = 0x46
)

// Context-specific PDU wrapper tags.
const (
	GetRequest     Tag = 0xA0
	GetNextRequest Tag = 0xA1
	GetResponse    Tag = 0xA2
	SetRequest     Tag = 0xA3
	Trap           Tag = 0xA4
	GetBulkRequest Tag = 0xA5
	InformRequest  Tag = 0xA6
	SNMPv2Trap     Tag = 0xA7
)

// Exception markers, used in place of a value in a response VarBind.
const (
	NoSuchObject   Tag = 0x80
	NoSuchInstance Tag = 0x81
	EndOfMib       Tag = 0x82
)

var tagNames = map[Tag]string{
	Integer: "Integer", OctetString: "OctetString", Null: "Null",
	ObjectIdentifier: "ObjectIdentifier", Sequence: "Sequence",
	IPAddress: "IpAddress", Counter32: "Counter32", Gauge32: "Gauge32",
	TimeTicks: "TimeTicks", Opaque: "Opaque", Counter64: "Counter64",
	GetRequest: "GetRequest", GetNextRequest: "GetNextRequest",
	GetResponse: "GetResponse", SetRequest: "SetRequest", Trap: "Trap",
	GetBulkRequest: "GetBulkRequest", InformRequest: "InformRequest",
	SNMPv2Trap: "SnmpV2Trap", NoSuchObject: "NoSuchObject",
	NoSuchInstance: "NoSuchInstance", EndOfMib: "EndOfMib",
}

// String renders a tag using its SNMP/ASN.1 name, falling back to the raw
// byte value for anything outside the closed enumeration.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(0x%02x)", byte(t))
}

// tagFromByte maps a raw tag byte onto the closed enumeration, rejecting
// anything else as an unsupported type.
func tagFromByte(b byte) (Tag, error) {
	if _, ok := tagNames[Tag(b)]; ok {
		return Tag(b), nil
	}
	return 0, &UnsupportedTypeError{Byte: b}
}

// ParseTag reads one tag byte from input, returning the decoded tag and the
// unconsumed remainder.
func ParseTag(input []byte) (Tag, []byte, error) {
	if len(input) == 0 {
		return 0, nil, ErrIncompleteData
	}
	tag, err := tagFromByte(input[0])
	if err != nil {
		return 0, nil, err
	}
	return tag, input[1:], nil
}
