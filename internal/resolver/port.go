package resolver

import (
	"net"
	"strconv"

	"lodestone/internal/logging"
)

// AvailablePort probes for a port that can be bound on the given address and
// returns its number. preferred is tried first; 0 asks the OS for an ephemeral
// port. On failure one retry with an ephemeral port is made, then the
// configured fallback port is returned without error.
//
// The reported port is a best-effort hint only: the probe socket is closed
// before returning, so an independent caller can grab the port in between.
// The Go runtime manages the listen backlog; there is no per-listener knob.
func (r *Resolver) AvailablePort(bind net.IP, preferred int) int {
	if port, ok := r.tryListen(bind, preferred); ok {
		return port
	}
	if port, ok := r.tryListen(bind, 0); ok {
		return port
	}
	return r.fallbackPort
}

func (r *Resolver) tryListen(bind net.IP, port int) (int, bool) {
	host := ""
	if bind != nil {
		host = bind.String()
	}
	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		r.logger.Warn("open port failed",
			logging.Int("port", port),
			logging.Error(err),
		)
		return 0, false
	}
	defer ln.Close()

	tcp, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		return 0, false
	}
	return tcp.Port, true
}
