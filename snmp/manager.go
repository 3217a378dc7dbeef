package snmp

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/damianoneill/go-snmp/snmp/ber"
)

// Manager provides an interface for SNMPv2c device management (spec.md
// §2/§4.7), adapted from the teacher's Session interface to the exchange
// set spec.md requires: single-object Get, iterative Walk, single-exchange
// GetBulk, and iterative BulkWalk.
type Manager interface {
	// Get issues a GetRequest for oids, returning one VarBind per oid in
	// the order requested.
	Get(ctx context.Context, oids []string) ([]VarBind, error)

	// Walk issues successive GetNextRequests starting from rootOid, calling
	// walker for each VarBind encountered that remains within the rootOid
	// subtree. Walk stops, without error, the first time a returned OID
	// falls outside the subtree, the value is an exception
	// (NoSuchObject/NoSuchInstance/EndOfMib), or the agent answers with
	// error_status NoSuchName (the v1 end-of-MIB oracle); it stops with
	// error if walker returns one or the exchange fails.
	Walk(ctx context.Context, rootOid string, walker Walker) error

	// GetBulk issues a single GetBulkRequest: the first nonRepeaters OIDs
	// are each advanced once, the remainder advanced up to maxRepetitions
	// times, as a single round trip (RFC 3416 §4.2.3).
	GetBulk(ctx context.Context, oids []string, nonRepeaters, maxRepetitions int) ([]VarBind, error)

	// BulkWalk behaves as Walk but issues GetBulkRequests with the given
	// maxRepetitions in place of GetNextRequests, reducing the number of
	// round trips needed to traverse a large subtree.
	BulkWalk(ctx context.Context, rootOid string, maxRepetitions int, walker Walker) error

	// Close releases any resources held by the Manager. A Manager backed
	// by the default Transport has none to release per-exchange, but Close
	// is provided so callers have one place to hook shutdown regardless of
	// Transport.
	Close() error
}

// Walker is called for each VarBind produced by Walk/BulkWalk. Returning an
// error terminates the walk early with that error.
type Walker func(vb VarBind) error

type managerImpl struct {
	config        *ManagerConfig
	nextRequestID int32 // accessed only via atomic.AddInt32
}

func (m *managerImpl) Get(ctx context.Context, oids []string) ([]VarBind, error) {
	parsed, err := parseOIDs(oids)
	if err != nil {
		return nil, err
	}
	pdu, err := m.exchange(ctx, "Get", newGetRequest(m.nextID(), parsed))
	if err != nil {
		return nil, err
	}
	if len(pdu.VarBinds) == 0 {
		return nil, ErrNoVarBinds
	}
	return pdu.VarBinds, nil
}

func (m *managerImpl) GetBulk(ctx context.Context, oids []string, nonRepeaters, maxRepetitions int) ([]VarBind, error) {
	parsed, err := parseOIDs(oids)
	if err != nil {
		return nil, err
	}
	pdu, err := m.exchange(ctx, "GetBulk",
		newGetBulkRequest(m.nextID(), int32(nonRepeaters), int32(maxRepetitions), parsed))
	if err != nil {
		return nil, err
	}
	return pdu.VarBinds, nil
}

func (m *managerImpl) Walk(ctx context.Context, rootOid string, walker Walker) error {
	root, err := ParseOID(rootOid)
	if err != nil {
		return err
	}

	next := root
	for {
		pdu, err := m.exchange(ctx, "Walk", newGetNextRequest(m.nextID(), [][]uint32{next}))
		if err != nil {
			var responseErr *ResponseError
			if errors.As(err, &responseErr) && responseErr.Status == NoSuchName {
				return nil // v1 end-of-MIB oracle, spec.md §4.7
			}
			return err
		}
		if len(pdu.VarBinds) == 0 {
			return ErrNoVarBinds
		}

		vb := pdu.VarBinds[0]
		if !isInSubtree(root, vb.OID) || vb.Value.IsException() {
			return nil
		}
		if err := walker(vb); err != nil {
			return err
		}
		next = vb.OID
	}
}

func (m *managerImpl) BulkWalk(ctx context.Context, rootOid string, maxRepetitions int, walker Walker) error {
	root, err := ParseOID(rootOid)
	if err != nil {
		return err
	}

	next := root
	for {
		pdu, err := m.exchange(ctx, "BulkWalk",
			newGetBulkRequest(m.nextID(), 0, int32(maxRepetitions), [][]uint32{next}))
		if err != nil {
			return err
		}
		if len(pdu.VarBinds) == 0 {
			return nil // empty batch terminates cleanly, spec.md §4.7 bulk_walk
		}

		for _, vb := range pdu.VarBinds {
			if !isInSubtree(root, vb.OID) || vb.Value.IsException() {
				return nil
			}
			if err := walker(vb); err != nil {
				return err
			}
			next = vb.OID
		}
	}
}

func (m *managerImpl) Close() error {
	return nil
}

// exchange encodes pdu into a message, sends it via the configured
// Transport, retrying on timeout up to config.retries times, then decodes
// and validates the response. Grounded in the teacher's executeGet
// retry loop (session.go::executeGet).
func (m *managerImpl) exchange(ctx context.Context, op string, pdu PDU) (PDU, error) {
	id := uuid.New()
	m.config.trace.ExchangeStart(id, m.config, op)
	start := time.Now()

	packet := encodeMessage(m.config.community, pdu)

	var response []byte
	var err error
	for attempt := 0; ; attempt++ {
		attemptStart := time.Now()
		exchangeCtx, cancel := context.WithTimeout(ctx, m.config.timeout)
		response, err = m.config.transport.SendAndReceive(exchangeCtx, m.config.address, packet)
		timedOut := exchangeCtx.Err() != nil
		cancel()
		d := time.Since(attemptStart)

		m.config.trace.WriteDone(id, m.config, packet, err, d)
		m.config.trace.ReadDone(id, m.config, response, err, d)

		if err == nil {
			break
		}

		if !timedOut || attempt >= m.config.retries {
			m.config.trace.Error(id, "exchange", m.config, err)
			m.config.trace.ExchangeDone(id, m.config, op, err, time.Since(start))
			return PDU{}, err
		}
		m.config.trace.Retry(id, m.config, attempt+1)
	}

	m.config.trace.ExchangeDone(id, m.config, op, nil, time.Since(start))

	msg, err := parseMessage(response)
	if err != nil {
		m.config.trace.Error(id, "parseMessage", m.config, err)
		return PDU{}, err
	}

	if msg.PDU.Tag != ber.GetResponse {
		return PDU{}, ErrUnexpectedPDUTag
	}
	if msg.PDU.RequestID != pdu.RequestID {
		return PDU{}, ErrRequestIDMismatch
	}
	if msg.PDU.ErrorStatus != NoError {
		return PDU{}, &ResponseError{Status: msg.PDU.ErrorStatus, Index: msg.PDU.ErrorIndex}
	}

	return msg.PDU, nil
}

func (m *managerImpl) nextID() int32 {
	return atomic.AddInt32(&m.nextRequestID, 1)
}

// ParseOID parses a dotted-decimal object identifier string, tolerating a
// leading dot (".1.3.6.1" and "1.3.6.1" are equivalent).
func ParseOID(input string) ([]uint32, error) {
	trimmed := strings.TrimPrefix(input, ".")
	if trimmed == "" {
		return nil, &InvalidOIDStringError{Input: input, Component: ""}
	}

	components := strings.Split(trimmed, ".")
	oid := make([]uint32, len(components))
	for i, c := range components {
		v, err := strconv.ParseUint(c, 10, 32)
		if err != nil {
			return nil, &InvalidOIDStringError{Input: input, Component: c}
		}
		oid[i] = uint32(v)
	}
	return oid, nil
}

func parseOIDs(inputs []string) ([][]uint32, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyOidList
	}
	oids := make([][]uint32, len(inputs))
	for i, s := range inputs {
		oid, err := ParseOID(s)
		if err != nil {
			return nil, err
		}
		oids[i] = oid
	}
	return oids, nil
}

// isInSubtree reports whether oid is root itself or a strict descendant of
// it: a lexicographic prefix match over subidentifiers, per spec.md §4.7's
// walk-termination rule.
func isInSubtree(root, oid []uint32) bool {
	if len(oid) < len(root) {
		return false
	}
	for i, sub := range root {
		if oid[i] != sub {
			return false
		}
	}
	return true
}
