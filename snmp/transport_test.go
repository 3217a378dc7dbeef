package snmp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUDPTransportSendAndReceive(t *testing.T) {
	agent, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer agent.Close() //nolint: errcheck

	go func() {
		buf := make([]byte, maxResponseSize)
		n, addr, err := agent.ReadFrom(buf)
		if err != nil {
			return
		}
		reply := append([]byte{}, buf[:n]...)
		reply = append(reply, 0xFF) // distinguishable from the echoed request
		_, _ = agent.WriteTo(reply, addr)
	}()

	transport := newUDPTransport("udp")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	response, err := transport.SendAndReceive(ctx, agent.LocalAddr().String(), []byte{0x01, 0x02, 0x03})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0xFF}, response)
}

func TestUDPTransportReadTimeout(t *testing.T) {
	agent, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer agent.Close() //nolint: errcheck
	// No reader goroutine: the agent never replies, so SendAndReceive must
	// return once ctx's deadline passes rather than blocking forever.

	transport := newUDPTransport("udp")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = transport.SendAndReceive(ctx, agent.LocalAddr().String(), []byte{0x01})
	assert.Error(t, err)
}
