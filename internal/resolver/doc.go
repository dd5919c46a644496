// Package resolver discovers a machine's usable network identity: a
// non-loopback local address, a host name, and a free listening port.
//
// Local address discovery is platform- and topology-dependent: host-only VM
// adapters, misconfigured hosts files, and missing default routes each defeat
// any single naive lookup. The resolver therefore runs an ordered list of
// strategies and takes the first usable answer, falling back to safe literals
// when every strategy fails. Discovery never returns an error; transient
// failures are logged and the next strategy is tried.
//
// The OS-facing pieces (interface enumeration, outbound probing, name lookups)
// sit behind small interfaces so tests can substitute fakes without touching
// the network.
package resolver
