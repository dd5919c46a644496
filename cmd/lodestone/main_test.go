package main

import (
	"encoding/json"
	"net"
	"strconv"
	"strings"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()

	expected := []string{
		"ip", "hostname", "port", "resolve", "interfaces",
		"fetch", "watch", "home", "journal", "config",
	}
	registered := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		registered[sub.Name()] = true
	}
	for _, name := range expected {
		if !registered[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestIPCommandPrintsAddress(t *testing.T) {
	cfg := localProbeConfig(t)
	configPath := newTestConfigFile(t, cfg)

	out, _, err := runCLI(t, configPath, "ip")
	if err != nil {
		t.Fatalf("ip: %v", err)
	}

	lines := strings.Fields(strings.TrimSpace(out))
	if len(lines) == 0 {
		t.Fatal("expected an address on stdout")
	}
	last := lines[len(lines)-1]
	if net.ParseIP(last) == nil {
		t.Fatalf("expected an IP address, got %q", last)
	}
}

func TestIPCommandJSONIncludesStrategies(t *testing.T) {
	cfg := localProbeConfig(t)
	configPath := newTestConfigFile(t, cfg)

	out, _, err := runCLI(t, configPath, "--json", "ip")
	if err != nil {
		t.Fatalf("ip --json: %v", err)
	}

	var payload struct {
		Address    string `json:"address"`
		Strategies []struct {
			Strategy string `json:"strategy"`
		} `json:"strategies"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("unmarshal output: %v\n%s", err, out)
	}
	if net.ParseIP(payload.Address) == nil {
		t.Fatalf("expected an IP address, got %q", payload.Address)
	}
	if len(payload.Strategies) == 0 {
		t.Fatal("expected at least one strategy result")
	}
	if payload.Strategies[0].Strategy != "interface-scan" {
		t.Fatalf("expected interface-scan first, got %q", payload.Strategies[0].Strategy)
	}
}

func TestHostnameCommandPrintsName(t *testing.T) {
	cfg := localProbeConfig(t)
	configPath := newTestConfigFile(t, cfg)

	out, _, err := runCLI(t, configPath, "hostname")
	if err != nil {
		t.Fatalf("hostname: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatal("expected a host name on stdout")
	}
}

func TestPortCommandReturnsUsablePort(t *testing.T) {
	cfg := localProbeConfig(t)
	configPath := newTestConfigFile(t, cfg)

	out, _, err := runCLI(t, configPath, "port", "--bind", "127.0.0.1")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	port, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("expected a port number, got %q", out)
	}
	if port < 1 || port > 65535 {
		t.Fatalf("port %d out of range", port)
	}
}

func TestPortCommandRejectsOutOfRangePreference(t *testing.T) {
	cfg := localProbeConfig(t)
	configPath := newTestConfigFile(t, cfg)

	if _, _, err := runCLI(t, configPath, "port", "--prefer", "70000"); err == nil {
		t.Fatal("expected an error for an out-of-range preferred port")
	}
}

func TestResolveCommandLocalhost(t *testing.T) {
	cfg := localProbeConfig(t)
	configPath := newTestConfigFile(t, cfg)

	out, _, err := runCLI(t, configPath, "--json", "resolve", "localhost")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var payload struct {
		Host      string   `json:"host"`
		Addresses []string `json:"addresses"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("unmarshal output: %v\n%s", err, out)
	}
	if payload.Host != "localhost" {
		t.Fatalf("expected host localhost, got %q", payload.Host)
	}
	for _, addr := range payload.Addresses {
		ip := net.ParseIP(addr)
		if ip == nil {
			t.Fatalf("expected IP addresses, got %q", addr)
		}
		if !ip.IsLoopback() {
			t.Errorf("expected loopback address, got %s", ip)
		}
	}
}

func TestInterfacesCommandListsLoopback(t *testing.T) {
	cfg := localProbeConfig(t)
	configPath := newTestConfigFile(t, cfg)

	out, _, err := runCLI(t, configPath, "interfaces")
	if err != nil {
		t.Fatalf("interfaces: %v", err)
	}
	requireContains(t, out, "INTERFACE")
	requireContains(t, out, "lo")
}
