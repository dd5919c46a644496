package resolver

import (
	"context"
	"log/slog"
	"net"
	"os"
	"time"

	"lodestone/internal/config"
	"lodestone/internal/logging"
)

const (
	// DefaultProbeTimeout bounds each outbound probe connect attempt.
	DefaultProbeTimeout = 2 * time.Second
	// DefaultFallbackPort is returned when no listening socket can be opened.
	DefaultFallbackPort = 16000
)

func defaultProbeHosts() []string {
	return []string{"www.google.com:80", "www.baidu.com:80"}
}

// Options describes resolver construction parameters. The zero value is
// usable: IPv4 preferred, default probe hosts, real network access.
type Options struct {
	// PreferIPv4 skips IPv6 candidates during the interface scan.
	PreferIPv4 bool
	// PreferIPv6 skips IPv4 candidates during the interface scan.
	PreferIPv6 bool
	// ProbeHosts are host:port targets tried in order by the outbound probe.
	ProbeHosts []string
	// ProbeTimeout bounds each probe connect. Defaults to DefaultProbeTimeout.
	ProbeTimeout time.Duration
	// FallbackPort is returned by AvailablePort when every bind fails.
	// Defaults to DefaultFallbackPort.
	FallbackPort int
	// Enumerator supplies interface snapshots. Defaults to the OS.
	Enumerator Enumerator
	// Dialer performs outbound probe connections. Defaults to a real TCP dialer.
	Dialer Dialer
	// Lookup performs name resolution. Defaults to net.DefaultResolver.
	Lookup Lookup
	// Hostname reports the OS host name. Defaults to os.Hostname.
	Hostname func() (string, error)
	// Logger receives strategy warnings. Defaults to a no-op logger.
	Logger *slog.Logger
}

// Resolver answers local address, host name, and port questions. It holds no
// mutable state; concurrent use from multiple goroutines is safe.
type Resolver struct {
	preferIPv4   bool
	preferIPv6   bool
	probeHosts   []string
	fallbackPort int
	enum         Enumerator
	dialer       Dialer
	lookup       Lookup
	hostname     func() (string, error)
	logger       *slog.Logger
}

// New constructs a Resolver, filling unset options with defaults.
func New(opts Options) *Resolver {
	timeout := opts.ProbeTimeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	probeHosts := opts.ProbeHosts
	if len(probeHosts) == 0 {
		probeHosts = defaultProbeHosts()
	}
	fallbackPort := opts.FallbackPort
	if fallbackPort <= 0 {
		fallbackPort = DefaultFallbackPort
	}
	preferIPv4 := opts.PreferIPv4
	if !preferIPv4 && !opts.PreferIPv6 {
		preferIPv4 = true
	}
	enum := opts.Enumerator
	if enum == nil {
		enum = systemEnumerator{}
	}
	dialer := opts.Dialer
	if dialer == nil {
		dialer = &netDialer{timeout: timeout}
	}
	lookup := opts.Lookup
	if lookup == nil {
		lookup = net.DefaultResolver
	}
	hostnameFn := opts.Hostname
	if hostnameFn == nil {
		hostnameFn = os.Hostname
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		preferIPv4:   preferIPv4,
		preferIPv6:   opts.PreferIPv6,
		probeHosts:   probeHosts,
		fallbackPort: fallbackPort,
		enum:         enum,
		dialer:       dialer,
		lookup:       lookup,
		hostname:     hostnameFn,
		logger:       logging.NewComponentLogger(logger, "resolver"),
	}
}

// NewFromConfig constructs a Resolver from application configuration.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) *Resolver {
	if cfg == nil {
		return New(Options{PreferIPv4: true, Logger: logger})
	}
	return New(Options{
		PreferIPv4:   cfg.Resolver.PreferIPv4,
		PreferIPv6:   cfg.Resolver.PreferIPv6,
		ProbeHosts:   cfg.Resolver.ProbeHosts,
		ProbeTimeout: time.Duration(cfg.Resolver.ProbeTimeoutSeconds) * time.Second,
		FallbackPort: cfg.Resolver.FallbackPort,
		Logger:       logger,
	})
}

// StrategyResult records one strategy's outcome for diagnostic output.
type StrategyResult struct {
	Strategy string
	Address  net.IP
	Err      error
}

type strategy struct {
	name    string
	resolve func(context.Context) (net.IP, error)
}

func (r *Resolver) strategies() []strategy {
	return []strategy{
		{name: "interface-scan", resolve: r.scanInterfaces},
		{name: "host-lookup", resolve: r.localHostLookup},
		{name: "outbound-probe", resolve: r.probeLocalEndpoint},
	}
}

// LocalAddress returns a usable local address, preferring non-loopback
// candidates. It never returns nil: when every strategy fails the literal
// 127.0.0.1 is returned.
func (r *Resolver) LocalAddress(ctx context.Context) net.IP {
	ip, _ := r.LocalAddressDetail(ctx)
	return ip
}

// LocalAddressDetail runs the strategy cascade and additionally reports every
// strategy outcome up to and including the winning one.
func (r *Resolver) LocalAddressDetail(ctx context.Context) (net.IP, []StrategyResult) {
	results := make([]StrategyResult, 0, 3)
	for _, s := range r.strategies() {
		ip, err := s.resolve(ctx)
		results = append(results, StrategyResult{Strategy: s.name, Address: ip, Err: err})
		if err != nil {
			r.logger.Warn("address strategy failed",
				logging.String(logging.FieldStrategy, s.name),
				logging.Error(err),
			)
			continue
		}
		if ip == nil {
			continue
		}
		return ip, results
	}
	return net.IPv4(127, 0, 0, 1), results
}

// localHostLookup resolves the machine's own host name and accepts the first
// address only when it is not loopback.
func (r *Resolver) localHostLookup(ctx context.Context) (net.IP, error) {
	name, err := r.hostname()
	if err != nil {
		return nil, err
	}
	addrs, err := r.lookup.LookupIPAddr(ctx, name)
	if err != nil {
		return nil, err
	}
	for _, addr := range addrs {
		if !addr.IP.IsLoopback() {
			return addr.IP, nil
		}
	}
	return nil, nil
}

// probeLocalEndpoint opens a throwaway outbound connection purely to make the
// OS pick a routed local address, then reads that address back. Probe targets
// are tried in order; the first reachable one wins.
func (r *Resolver) probeLocalEndpoint(ctx context.Context) (net.IP, error) {
	var lastErr error
	for _, host := range r.probeHosts {
		ip, err := r.dialer.LocalEndpoint(ctx, host)
		if err != nil {
			r.logger.Debug("probe target unreachable",
				logging.String("target", host),
				logging.Error(err),
			)
			lastErr = err
			continue
		}
		return ip, nil
	}
	return nil, lastErr
}
