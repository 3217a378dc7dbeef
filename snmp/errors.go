package snmp

import (
	"fmt"

	"github.com/pkg/errors"
)

// ResponseError reports that an agent's GetResponse carried a non-zero
// error-status, per spec.md §4.7/§7. ErrorIndex is 1-based into the
// request's VarBind list, or 0 when the agent did not identify one.
type ResponseError struct {
	Status ErrorStatus
	Index  int32
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("snmp: agent returned error status %s at index %d", e.Status, e.Index)
}

// ErrUnexpectedPDUTag is returned when a decoded message's PDU does not
// carry the GetResponse tag expected of every reply.
var ErrUnexpectedPDUTag = errors.New("snmp: response PDU did not carry the GetResponse tag")

// ErrNoVarBinds is returned when a GetResponse carries no VarBinds, making
// it impossible to correlate the reply with any outstanding request.
var ErrNoVarBinds = errors.New("snmp: response carried no variable bindings")

// ErrEmptyOidList is returned by Get and GetBulk when called with no object
// identifiers (spec.md §4.7 edge cases). Walk and BulkWalk take a single
// root OID string; an empty one fails as an InvalidOIDStringError.
var ErrEmptyOidList = errors.New("snmp: at least one object identifier is required")

// ErrRequestIDMismatch is returned when a GetResponse's request-id does not
// match the outstanding request it was read for.
var ErrRequestIDMismatch = errors.New("snmp: response request-id did not match request")

// InvalidOIDStringError wraps a dotted-decimal OID string this manager
// could not parse, naming the offending component.
type InvalidOIDStringError struct {
	Input     string
	Component string
}

func (e *InvalidOIDStringError) Error() string {
	return fmt.Sprintf("snmp: invalid object identifier %q: bad component %q", e.Input, e.Component)
}
