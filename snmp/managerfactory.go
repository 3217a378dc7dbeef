package snmp

import (
	"math/rand"
	"net"
	"time"

	"github.com/imdario/mergo"
)

// ManagerOption configures Manager behaviour, following the teacher's
// functional-options pattern.
type ManagerOption func(*ManagerConfig)

// Timeout defines the time allowed for a single request/response exchange
// before it is considered a timeout (and retried, when Retries is above
// zero). Default 5s.
func Timeout(timeout time.Duration) ManagerOption {
	return func(c *ManagerConfig) { c.timeout = timeout }
}

// Retries defines the number of times a timed-out request is retried.
// Default 0: a timed-out exchange is returned as an error.
func Retries(value int) ManagerOption {
	return func(c *ManagerConfig) { c.retries = value }
}

// Network selects the transport network passed to the default UDP
// Transport. Default "udp". Has no effect when WithTransport is used.
func Network(value string) ManagerOption {
	return func(c *ManagerConfig) { c.network = value }
}

// Community sets the SNMPv2c community string. Default "public".
func Community(value string) ManagerOption {
	return func(c *ManagerConfig) { c.community = value }
}

// LoggingHooks installs a ManagerTrace. Default DefaultLoggingHooks.
func LoggingHooks(trace *ManagerTrace) ManagerOption {
	return func(c *ManagerConfig) { c.trace = trace }
}

// WithTransport overrides the default UDP Transport, primarily for tests
// that substitute a mock (spec.md §6).
func WithTransport(transport Transport) ManagerOption {
	return func(c *ManagerConfig) { c.transport = transport }
}

// ManagerConfig holds the resolved configuration for a Manager, built by
// applying ManagerOptions over defaultManagerConfig.
type ManagerConfig struct {
	address   string
	network   string
	community string
	timeout   time.Duration
	retries   int
	trace     *ManagerTrace
	transport Transport
}

var defaultManagerConfig = ManagerConfig{
	network:   "udp",
	community: "public",
	timeout:   time.Second * 5,
	retries:   0,
	trace:     DefaultLoggingHooks,
}

// NewManager constructs a Manager targeting address ("host:port", default
// SNMP port 161 if omitted by the caller), applying any supplied options
// over the package defaults.
func NewManager(target string, opts ...ManagerOption) (Manager, error) {
	config := defaultManagerConfig
	config.address = target
	if _, _, err := net.SplitHostPort(target); err != nil {
		config.address = net.JoinHostPort(target, "161")
	}
	for _, opt := range opts {
		opt(&config)
	}

	if err := mergo.Merge(config.trace, NoOpLoggingHooks); err != nil {
		return nil, err
	}

	if config.transport == nil {
		config.transport = newUDPTransport(config.network)
	}

	return &managerImpl{config: &config, nextRequestID: rand.Int31()}, nil //nolint: gosec
}
