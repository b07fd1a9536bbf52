// Package ifconf reads and assigns interface IPv4 addresses through
// the netdevice(7) ioctl control channel.
package ifconf

import "net/netip"

// Conn is a control channel to the kernel's interface configuration
// table. It is never used for data transfer.
type Conn interface {
	// GetAddr returns the current IPv4 address of the named interface.
	GetAddr(name string) (netip.Addr, error)
	// SetAddr assigns addr to the named interface. The kernel demands
	// CAP_NET_ADMIN for this.
	SetAddr(name string, addr netip.Addr) error
	// Close releases the channel.
	Close() error
}
