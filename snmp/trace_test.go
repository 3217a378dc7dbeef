package snmp

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/imdario/mergo"
	"github.com/stretchr/testify/assert"
)

func TestNoOpLoggingHooksDoNotPanic(t *testing.T) {
	config := &ManagerConfig{address: "agent.example:161"}
	id := uuid.New()
	assert.NotPanics(t, func() {
		NoOpLoggingHooks.ExchangeStart(id, config, "Get")
		NoOpLoggingHooks.ExchangeDone(id, config, "Get", nil, time.Millisecond)
		NoOpLoggingHooks.Error(id, "test", config, assert.AnError)
		NoOpLoggingHooks.WriteDone(id, config, nil, nil, time.Millisecond)
		NoOpLoggingHooks.ReadDone(id, config, nil, nil, time.Millisecond)
		NoOpLoggingHooks.Retry(id, config, 1)
	})
}

func TestMergoFillsMissingHooksFromNoOp(t *testing.T) {
	trace := &ManagerTrace{Error: DefaultLoggingHooks.Error}
	assert.Nil(t, trace.ExchangeStart)

	err := mergo.Merge(trace, NoOpLoggingHooks)
	assert.NoError(t, err)
	assert.NotNil(t, trace.ExchangeStart)
	assert.NotNil(t, trace.ExchangeDone)
	assert.NotNil(t, trace.WriteDone)
	assert.NotNil(t, trace.ReadDone)
	assert.NotNil(t, trace.Retry)
}

func TestDiagnosticLoggingHooksDoNotPanic(t *testing.T) {
	config := &ManagerConfig{address: "agent.example:161"}
	id := uuid.New()
	assert.NotPanics(t, func() {
		DiagnosticLoggingHooks.ExchangeStart(id, config, "Get")
		DiagnosticLoggingHooks.WriteDone(id, config, []byte{0x01}, nil, time.Millisecond)
		DiagnosticLoggingHooks.ReadDone(id, config, []byte{0x01}, nil, time.Millisecond)
	})
}
