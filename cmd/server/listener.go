package server

import (
	"net"
	"os"
	"strings"

	"applauncher/internal/logger"
)

type ListenAddr struct {
	Network string
	Address string
}

/**
 * Parse a configured listen address
 * @param {string} addr - "host:port", or "unix://<path>" for a unix socket
 * @returns {ListenAddr} Network and address for net.Listen
 */
func ParseListenAddr(addr string) ListenAddr {
	if path, ok := strings.CutPrefix(addr, "unix://"); ok {
		return ListenAddr{Network: "unix", Address: path}
	}
	return ListenAddr{Network: "tcp", Address: addr}
}

/**
 * Create listeners for all addresses
 * @param {[]ListenAddr} addrs - Listener addresses
 * @returns {[]net.Listener} Listeners that could be created
 * @returns {error} Last creation error, if any
 * @description
 * - A stale unix socket file is removed before listening
 */
func CreateListeners(addrs []ListenAddr) ([]net.Listener, error) {
	var listeners []net.Listener

	var lastErr error
	for _, addr := range addrs {
		if addr.Network == "unix" {
			if err := os.Remove(addr.Address); err != nil && !os.IsNotExist(err) {
				logger.Errorf("Failed to remove existing socket file: %v", err)
				lastErr = err
				continue
			}
		}
		l, err := net.Listen(addr.Network, addr.Address)
		if err != nil {
			logger.Errorf("Failed to create listener on %s://%s: %v", addr.Network, addr.Address, err)
			lastErr = err
			continue
		}
		listeners = append(listeners, l)
	}
	return listeners, lastErr
}
