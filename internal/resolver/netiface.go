package resolver

import (
	"context"
	"net"
	"strings"
)

// hostOnlyMarker identifies virtualization-only adapters ("host-only" virtual
// networks) by a case-insensitive substring match on the interface name.
const hostOnlyMarker = "host-only"

// Interface is a read-only snapshot of one network interface. Snapshots are
// re-enumerated on every resolution attempt, never cached.
type Interface struct {
	Name  string
	Up    bool
	Addrs []net.IP
}

// Enumerator supplies network interface snapshots.
type Enumerator interface {
	Interfaces() ([]Interface, error)
}

type systemEnumerator struct{}

func (systemEnumerator) Interfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		snapshot := Interface{
			Name: iface.Name,
			Up:   iface.Flags&net.FlagUp != 0,
		}
		addrs, err := iface.Addrs()
		if err == nil {
			for _, addr := range addrs {
				ipNet, ok := addr.(*net.IPNet)
				if !ok || ipNet.IP == nil {
					continue
				}
				snapshot.Addrs = append(snapshot.Addrs, ipNet.IP)
			}
		}
		out = append(out, snapshot)
	}
	return out, nil
}

// Interfaces returns the current interface snapshots, in OS enumeration order.
func (r *Resolver) Interfaces() ([]Interface, error) {
	return r.enum.Interfaces()
}

// scanInterfaces walks up interfaces in OS order, skipping host-only virtual
// adapters, and returns the first non-loopback address that survives the
// family preference. First match wins; there is no further tie-break.
func (r *Resolver) scanInterfaces(_ context.Context) (net.IP, error) {
	ifaces, err := r.enum.Interfaces()
	if err != nil {
		return nil, err
	}
	for _, iface := range ifaces {
		if !iface.Up {
			continue
		}
		if isHostOnly(iface.Name) {
			continue
		}
		for _, ip := range iface.Addrs {
			if ip.IsLoopback() {
				continue
			}
			if ip.To4() != nil {
				if r.preferIPv6 {
					continue
				}
				return ip, nil
			}
			if r.preferIPv4 {
				continue
			}
			return ip, nil
		}
	}
	return nil, nil
}

func isHostOnly(name string) bool {
	return strings.Contains(strings.ToLower(name), hostOnlyMarker)
}

// IsCandidate reports whether an interface would be considered by the scan:
// up and not a host-only virtual adapter.
func (i Interface) IsCandidate() bool {
	return i.Up && !isHostOnly(i.Name)
}
