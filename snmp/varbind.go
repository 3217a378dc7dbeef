package snmp

import (
	"github.com/damianoneill/go-snmp/snmp/ber"
)

// VarBind pairs an object identifier with its associated value, the atomic
// unit of both request and response PDUs (spec.md §3). A request VarBind
// normally carries NullValue; a response VarBind carries the agent's value,
// or one of the three exception singletons.
type VarBind struct {
	OID   []uint32
	Value ObjectSyntax
}

// writeToBuf appends the BER SEQUENCE encoding of a single VarBind
// (OBJECT IDENTIFIER, ObjectSyntax) to buf. Grounded in
// original_source/src/snmp/pdu.rs::VarBind::to_ber.
func (vb VarBind) writeToBuf(buf []byte) []byte {
	return ber.EncodeSequence(buf, func(inner []byte) []byte {
		inner = ber.EncodeOID(inner, vb.OID)
		inner = vb.Value.writeToBuf(inner)
		return inner
	})
}

// parseVarBind reads one VarBind SEQUENCE from input, returning it along
// with the unconsumed remainder. Grounded in
// original_source/src/snmp/pdu.rs::parse_varbind.
func parseVarBind(input []byte) (VarBind, []byte, error) {
	seq, rest, err := ber.ParseObject(input)
	if err != nil {
		return VarBind{}, nil, err
	}
	if err := seq.Expect(ber.Sequence); err != nil {
		return VarBind{}, nil, err
	}

	body := seq.Value

	oidObj, body, err := ber.ParseObject(body)
	if err != nil {
		return VarBind{}, nil, err
	}
	if err := oidObj.Expect(ber.ObjectIdentifier); err != nil {
		return VarBind{}, nil, err
	}
	oid, err := ber.DecodeOID(oidObj.Value)
	if err != nil {
		return VarBind{}, nil, err
	}

	valueObj, body, err := ber.ParseObject(body)
	if err != nil {
		return VarBind{}, nil, err
	}
	if len(body) != 0 {
		return VarBind{}, nil, ber.ErrTrailingData
	}

	value, err := objectSyntaxFromBER(valueObj)
	if err != nil {
		return VarBind{}, nil, err
	}

	return VarBind{OID: oid, Value: value}, rest, nil
}

// parseVarBindList reads the SEQUENCE OF VarBind wrapper and every VarBind
// it contains.
func parseVarBindList(input []byte) ([]VarBind, []byte, error) {
	seq, rest, err := ber.ParseObject(input)
	if err != nil {
		return nil, nil, err
	}
	if err := seq.Expect(ber.Sequence); err != nil {
		return nil, nil, err
	}

	body := seq.Value
	var varBinds []VarBind
	for len(body) > 0 {
		var vb VarBind
		vb, body, err = parseVarBind(body)
		if err != nil {
			return nil, nil, err
		}
		varBinds = append(varBinds, vb)
	}

	return varBinds, rest, nil
}

// encodeVarBindList appends the SEQUENCE OF VarBind encoding of varBinds to
// buf.
func encodeVarBindList(buf []byte, varBinds []VarBind) []byte {
	return ber.EncodeSequence(buf, func(inner []byte) []byte {
		for _, vb := range varBinds {
			inner = vb.writeToBuf(inner)
		}
		return inner
	})
}
