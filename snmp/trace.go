package snmp

import (
	"encoding/hex"
	"log"
	"time"

	"github.com/google/uuid"
)

// ManagerTrace defines hooks a caller can supply to observe a Manager's
// request/response exchanges, adapted from the teacher's SessionTrace. Each
// exchange is tagged with a correlation ID so concurrent callers can match
// hook invocations back to one logical request even when their log lines
// interleave.
type ManagerTrace struct {
	// ExchangeStart is called before a request packet is encoded and sent.
	ExchangeStart func(id uuid.UUID, config *ManagerConfig, op string)

	// ExchangeDone is called when a request/response exchange completes,
	// successfully or not.
	ExchangeDone func(id uuid.UUID, config *ManagerConfig, op string, err error, d time.Duration)

	// Error is called after an error condition has been detected.
	Error func(id uuid.UUID, location string, config *ManagerConfig, err error)

	// WriteDone is called after a request packet has been handed to the
	// transport.
	WriteDone func(id uuid.UUID, config *ManagerConfig, output []byte, err error, d time.Duration)

	// ReadDone is called after a response packet has been read back from
	// the transport.
	ReadDone func(id uuid.UUID, config *ManagerConfig, input []byte, err error, d time.Duration)

	// Retry is called before a request is retried after a timeout.
	Retry func(id uuid.UUID, config *ManagerConfig, attempt int)
}

// DefaultLoggingHooks provides a default logging hook to report errors.
var DefaultLoggingHooks = &ManagerTrace{
	Error: func(id uuid.UUID, location string, config *ManagerConfig, err error) {
		log.Printf("SNMP-Error id:%s context:%s target:%s err:%v\n", id, location, config.address, err)
	},
}

// MetricLoggingHooks provides a set of hooks that log exchange timings.
var MetricLoggingHooks = &ManagerTrace{
	ExchangeDone: func(id uuid.UUID, config *ManagerConfig, op string, err error, d time.Duration) {
		log.Printf("SNMP-ExchangeDone id:%s op:%s target:%s err:%v took:%dms\n",
			id, op, config.address, err, d.Milliseconds())
	},
	Error: DefaultLoggingHooks.Error,
	WriteDone: func(id uuid.UUID, config *ManagerConfig, output []byte, err error, d time.Duration) {
		log.Printf("SNMP-WriteDone id:%s target:%s err:%v took:%dms\n", id, config.address, err, d.Milliseconds())
	},
	ReadDone: func(id uuid.UUID, config *ManagerConfig, input []byte, err error, d time.Duration) {
		log.Printf("SNMP-ReadDone id:%s target:%s err:%v took:%dms\n", id, config.address, err, d.Milliseconds())
	},
	Retry: func(id uuid.UUID, config *ManagerConfig, attempt int) {
		log.Printf("SNMP-Retry id:%s target:%s attempt:%d\n", id, config.address, attempt)
	},
}

// DiagnosticLoggingHooks provides a set of hooks that log all events with
// full packet data.
var DiagnosticLoggingHooks = &ManagerTrace{
	ExchangeStart: func(id uuid.UUID, config *ManagerConfig, op string) {
		log.Printf("SNMP-ExchangeStart id:%s op:%s target:%s\n", id, op, config.address)
	},
	ExchangeDone: MetricLoggingHooks.ExchangeDone,
	Error:        DefaultLoggingHooks.Error,
	WriteDone: func(id uuid.UUID, config *ManagerConfig, output []byte, err error, d time.Duration) {
		log.Printf("SNMP-WriteDone id:%s target:%s err:%v took:%dms data:%s\n",
			id, config.address, err, d.Milliseconds(), hex.EncodeToString(output))
	},
	ReadDone: func(id uuid.UUID, config *ManagerConfig, input []byte, err error, d time.Duration) {
		log.Printf("SNMP-ReadDone id:%s target:%s err:%v took:%dms data:%s\n",
			id, config.address, err, d.Milliseconds(), hex.EncodeToString(input))
	},
	Retry: MetricLoggingHooks.Retry,
}

// NoOpLoggingHooks provides a set of hooks that do nothing, used to fill in
// any hook left nil by a caller-supplied trace so call sites never need a
// nil check.
var NoOpLoggingHooks = &ManagerTrace{
	ExchangeStart: func(id uuid.UUID, config *ManagerConfig, op string) {},
	ExchangeDone:  func(id uuid.UUID, config *ManagerConfig, op string, err error, d time.Duration) {},
	Error:         func(id uuid.UUID, location string, config *ManagerConfig, err error) {},
	WriteDone:     func(id uuid.UUID, config *ManagerConfig, output []byte, err error, d time.Duration) {},
	ReadDone:      func(id uuid.UUID, config *ManagerConfig, input []byte, err error, d time.Duration) {},
	Retry:         func(id uuid.UUID, config *ManagerConfig, attempt int) {},
}
