package snmp

import (
	"github.com/damianoneill/go-snmp/snmp/ber"
)

// ErrorStatus is the closed enumeration of SNMPv2c PDU error-status values
// spec.md §3 names: NoError through GenErr. Any other integer is rejected
// as an invalid enum value rather than widened to the full RFC 3416 set
// (which adds SNMPv2-only-on-SET codes like NoAccess/WrongType/NoCreation
// that this read-only manager never provokes or needs to report).
type ErrorStatus int32

// SNMPv2c error-status values.
const (
	NoError    ErrorStatus = 0
	TooBig     ErrorStatus = 1
	NoSuchName ErrorStatus = 2
	BadValue   ErrorStatus = 3
	ReadOnly   ErrorStatus = 4
	GenErr     ErrorStatus = 5
)

var errorStatusNames = map[ErrorStatus]string{
	NoError: "noError", TooBig: "tooBig", NoSuchName: "noSuchName",
	BadValue: "badValue", ReadOnly: "readOnly", GenErr: "genErr",
}

func (s ErrorStatus) String() string {
	if name, ok := errorStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func errorStatusFromInt32(v int32) (ErrorStatus, error) {
	if _, ok := errorStatusNames[ErrorStatus(v)]; !ok {
		return 0, &ber.InvalidEnumValueError{Value: v}
	}
	return ErrorStatus(v), nil
}

// PDU is the SNMPv2c protocol data unit (spec.md §3/§4.6). Its wire shape
// depends on its Tag: GetRequest, GetNextRequest, and GetResponse share the
// "basic" error-status/error-index shape; GetBulkRequest instead carries
// non-repeaters/max-repetitions in those same wire positions. The teacher's
// and original_source's single struct reused ErrorStatus/ErrorIndex fields
// for both without a type-safe discriminator; PDU separates the two so a
// GetBulkRequest cannot be misread with basic-shape semantics.
type PDU struct {
	Tag       ber.Tag
	RequestID int32
	VarBinds  []VarBind

	// Basic fields, populated for GetRequest/GetNextRequest/GetResponse.
	ErrorStatus ErrorStatus
	ErrorIndex  int32

	// Bulk fields, populated for GetBulkRequest.
	NonRepeaters   int32
	MaxRepetitions int32
}

// IsBulk reports whether this PDU uses the GetBulkRequest wire shape.
func (p PDU) IsBulk() bool { return p.Tag == ber.GetBulkRequest }

// newGetRequest builds a GetRequest PDU for the given OIDs, each paired
// with a Null placeholder value, per spec.md §4.7.
func newGetRequest(requestID int32, oids [][]uint32) PDU {
	return PDU{Tag: ber.GetRequest, RequestID: requestID, VarBinds: nullVarBinds(oids)}
}

// newGetNextRequest builds a GetNextRequest PDU.
func newGetNextRequest(requestID int32, oids [][]uint32) PDU {
	return PDU{Tag: ber.GetNextRequest, RequestID: requestID, VarBinds: nullVarBinds(oids)}
}

// newGetBulkRequest builds a GetBulkRequest PDU.
func newGetBulkRequest(requestID int32, nonRepeaters, maxRepetitions int32, oids [][]uint32) PDU {
	return PDU{
		Tag:            ber.GetBulkRequest,
		RequestID:      requestID,
		NonRepeaters:   nonRepeaters,
		MaxRepetitions: maxRepetitions,
		VarBinds:       nullVarBinds(oids),
	}
}

func nullVarBinds(oids [][]uint32) []VarBind {
	varBinds := make([]VarBind, len(oids))
	for i, oid := range oids {
		varBinds[i] = VarBind{OID: oid, Value: NullValue}
	}
	return varBinds
}

// writeToBuf appends the BER encoding of the PDU, wrapped in its
// context-specific tag, to buf.
func (p PDU) writeToBuf(buf []byte) []byte {
	return ber.EncodeContainer(buf, p.Tag, func(inner []byte) []byte {
		inner = ber.EncodeInteger(inner, p.RequestID)
		if p.IsBulk() {
			inner = ber.EncodeInteger(inner, p.NonRepeaters)
			inner = ber.EncodeInteger(inner, p.MaxRepetitions)
		} else {
			inner = ber.EncodeInteger(inner, int32(p.ErrorStatus))
			inner = ber.EncodeInteger(inner, p.ErrorIndex)
		}
		return encodeVarBindList(inner, p.VarBinds)
	})
}

// parsePDU reads a PDU wrapped in a context-specific tag from input.
// Grounded in spec.md §4.6 and original_source/src/snmp/pdu.rs::Pdu::from_ber,
// supplemented with the basic/bulk shape dichotomy that source lacks.
func parsePDU(input []byte) (PDU, []byte, error) {
	obj, rest, err := ber.ParseObject(input)
	if err != nil {
		return PDU{}, nil, err
	}

	switch obj.Tag { //nolint: exhaustive
	case ber.GetRequest, ber.GetNextRequest, ber.GetResponse, ber.GetBulkRequest:
	default:
		return PDU{}, nil, &ber.UnexpectedTagError{Expected: ber.GetResponse, Got: obj.Tag}
	}

	body := obj.Value

	requestIDObj, body, err := ber.ParseObject(body)
	if err != nil {
		return PDU{}, nil, err
	}
	if err := requestIDObj.Expect(ber.Integer); err != nil {
		return PDU{}, nil, err
	}
	requestID, err := ber.DecodeInteger(requestIDObj.Value)
	if err != nil {
		return PDU{}, nil, err
	}

	pdu := PDU{Tag: obj.Tag, RequestID: requestID}

	secondObj, body, err := ber.ParseObject(body)
	if err != nil {
		return PDU{}, nil, err
	}
	if err := secondObj.Expect(ber.Integer); err != nil {
		return PDU{}, nil, err
	}
	second, err := ber.DecodeInteger(secondObj.Value)
	if err != nil {
		return PDU{}, nil, err
	}

	thirdObj, body, err := ber.ParseObject(body)
	if err != nil {
		return PDU{}, nil, err
	}
	if err := thirdObj.Expect(ber.Integer); err != nil {
		return PDU{}, nil, err
	}
	third, err := ber.DecodeInteger(thirdObj.Value)
	if err != nil {
		return PDU{}, nil, err
	}

	if pdu.IsBulk() {
		pdu.NonRepeaters = second
		pdu.MaxRepetitions = third
	} else {
		status, err := errorStatusFromInt32(second)
		if err != nil {
			return PDU{}, nil, err
		}
		pdu.ErrorStatus = status
		pdu.ErrorIndex = third
	}

	varBinds, body, err := parseVarBindList(body)
	if err != nil {
		return PDU{}, nil, err
	}
	if len(body) != 0 {
		return PDU{}, nil, ber.ErrTrailingData
	}
	pdu.VarBinds = varBinds

	return pdu, rest, nil
}
