package ifconf

import (
	"net/netip"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// sockAddrDataSize is the size of sa_data in the kernel's generic
// struct sockaddr.
const sockAddrDataSize = 14

// SockAddr mirrors the layout of the kernel's generic struct sockaddr:
// a 2-byte address family followed by an opaque payload. For AF_INET
// the four address octets sit at Data[2:6]; Data[0:2] is the port
// field of sockaddr_in and stays zero for interface addresses.
type SockAddr struct {
	Family uint16
	Data   [sockAddrDataSize]byte
}

// SockAddrFromAddr encodes an IPv4 address into a SockAddr. The
// netdevice ioctls only accept AF_INET here, so IPv6 is refused.
func SockAddrFromAddr(addr netip.Addr) (SockAddr, error) {
	var sa SockAddr
	if !addr.Is4() {
		return sa, errors.Errorf("encode sockaddr %s: IPv6 is not supported", addr)
	}
	sa.Family = unix.AF_INET
	octets := addr.As4()
	copy(sa.Data[2:6], octets[:])
	return sa, nil
}

// Addr decodes the SockAddr into a generic address.
func (sa SockAddr) Addr() (netip.Addr, error) {
	switch sa.Family {
	case unix.AF_INET:
		var octets [4]byte
		copy(octets[:], sa.Data[2:6])
		return netip.AddrFrom4(octets), nil
	case unix.AF_INET6:
		return netip.Addr{}, errors.New("decode sockaddr: IPv6 is not supported")
	default:
		return netip.Addr{}, errors.Errorf("decode sockaddr: unknown address family %d", sa.Family)
	}
}
