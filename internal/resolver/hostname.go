package resolver

import (
	"context"
	"strings"

	"lodestone/internal/logging"
)

// literalLocalhost is both the weak-result marker and the terminal fallback.
// Some platforms report "localhost" as the machine name when the hosts file is
// not set up properly; that exact string is treated as a miss so discovery
// falls through to the outbound probe.
const literalLocalhost = "localhost"

// LocalHostName returns the machine's host name. The OS-reported name is used
// unless it errors or equals the literal "localhost"; then the outbound probe
// picks a routed local address and its reverse-mapped name is returned. The
// terminal fallback is the literal "localhost".
func (r *Resolver) LocalHostName(ctx context.Context) string {
	name, err := r.hostname()
	if err != nil {
		r.logger.Warn("os host name lookup failed", logging.Error(err))
	} else if name != "" && name != literalLocalhost {
		return name
	}

	ip, err := r.probeLocalEndpoint(ctx)
	if err != nil || ip == nil {
		if err != nil {
			r.logger.Warn("host name probe failed", logging.Error(err))
		}
		return literalLocalhost
	}

	names, err := r.lookup.LookupAddr(ctx, ip.String())
	if err != nil || len(names) == 0 {
		if err != nil {
			r.logger.Warn("reverse lookup failed",
				logging.String("address", ip.String()),
				logging.Error(err),
			)
		}
		return literalLocalhost
	}
	return strings.TrimSuffix(names[0], ".")
}
