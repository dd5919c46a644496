package resolver

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Dialer opens a throwaway outbound connection and reports which local
// address the OS selected for it. Implementations must close the connection
// before returning.
type Dialer interface {
	LocalEndpoint(ctx context.Context, hostport string) (net.IP, error)
}

type netDialer struct {
	timeout time.Duration
}

func (d *netDialer) LocalEndpoint(ctx context.Context, hostport string) (net.IP, error) {
	dialer := net.Dialer{Timeout: d.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", hostport)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	local, ok := conn.LocalAddr().(*net.TCPAddr)
	if !ok || local.IP == nil {
		return nil, fmt.Errorf("connection to %s has no usable local endpoint", hostport)
	}
	return local.IP, nil
}
