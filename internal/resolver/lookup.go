package resolver

import (
	"context"
	"net"

	"lodestone/internal/logging"
)

// Lookup performs forward and reverse name resolution. *net.Resolver
// implements it.
type Lookup interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// AddressesForHost resolves host to all known addresses. Resolution failures
// are logged and yield an empty result, never an error: callers treat empty as
// "unresolvable" without distinguishing DNS-not-found from network-down.
func (r *Resolver) AddressesForHost(ctx context.Context, host string) []net.IP {
	addrs, err := r.lookup.LookupIPAddr(ctx, host)
	if err != nil {
		r.logger.Warn("host resolution failed",
			logging.String("host", host),
			logging.Error(err),
		)
		return nil
	}
	out := make([]net.IP, 0, len(addrs))
	for _, addr := range addrs {
		out = append(out, addr.IP)
	}
	return out
}
