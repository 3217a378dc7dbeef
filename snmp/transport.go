package snmp

import (
	"context"
	"net"

	"github.com/pkg/errors"
)

// maxResponseSize bounds a single read from the wire. SNMP messages are
// small; anything that fills this buffer indicates a malformed or hostile
// peer rather than a legitimate oversized response.
const maxResponseSize = 65535

// Transport abstracts the network exchange of one request packet for one
// response packet, so Manager's protocol logic can be tested against a
// mock without a real socket (spec.md §6). The default implementation is
// udpTransport.
type Transport interface {
	// SendAndReceive sends packet to target and returns the first response
	// packet received, or an error if ctx's deadline passes first.
	SendAndReceive(ctx context.Context, target string, packet []byte) ([]byte, error)
}

// udpTransport is the default Transport: one UDP socket dialed fresh for
// each exchange and closed immediately after, matching the teacher's
// dial/write/read session lifecycle and
// original_source/src/manager/network.rs::send_and_receive.
type udpTransport struct {
	network string
}

// newUDPTransport returns the default UDP Transport for the given network
// name (normally "udp").
func newUDPTransport(network string) Transport {
	return &udpTransport{network: network}
}

func (t *udpTransport) SendAndReceive(ctx context.Context, target string, packet []byte) ([]byte, error) {
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, t.network, target)
	if err != nil {
		return nil, errors.Wrap(err, "dial")
	}
	defer conn.Close() //nolint: errcheck

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, errors.Wrap(err, "set deadline")
		}
	}

	if _, err := conn.Write(packet); err != nil {
		return nil, errors.Wrap(err, "write")
	}

	buf := make([]byte, maxResponseSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}

	return buf[:n], nil
}
