package ifconf

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// https://man7.org/linux/man-pages/man7/netdevice.7.html
const (
	ifReqSize = unix.IFNAMSIZ + 24

	saFamilyOff = unix.IFNAMSIZ
	saDataOff   = unix.IFNAMSIZ + 2
)

// Ifreq is the fixed-layout request record the netdevice ioctls take:
// an IFNAMSIZ-byte NUL-padded interface name followed by a union area
// that SIOCGIFADDR and SIOCSIFADDR interpret as a sockaddr. The union
// is only touched through the SockAddr accessors.
type Ifreq struct {
	raw [ifReqSize]byte
}

// NewIfreq builds an Ifreq for the named interface with the union area
// zeroed. The name must leave room for the trailing NUL.
func NewIfreq(name string) (*Ifreq, error) {
	if len(name) >= unix.IFNAMSIZ {
		return nil, errors.Errorf("interface name %q exceeds %d bytes", name, unix.IFNAMSIZ-1)
	}
	ifr := &Ifreq{}
	copy(ifr.raw[:unix.IFNAMSIZ], name)
	return ifr, nil
}

// Name returns the interface name stored in the record.
func (ifr *Ifreq) Name() string {
	name := ifr.raw[:unix.IFNAMSIZ]
	if i := bytes.IndexByte(name, 0); i != -1 {
		name = name[:i]
	}
	return string(name)
}

// SetSockAddr writes sa into the union area. The family field is
// host-endian, matching what the kernel reads on SIOCSIFADDR.
func (ifr *Ifreq) SetSockAddr(sa SockAddr) {
	binary.NativeEndian.PutUint16(ifr.raw[saFamilyOff:], sa.Family)
	copy(ifr.raw[saDataOff:saDataOff+sockAddrDataSize], sa.Data[:])
}

// SockAddr reads the union area the kernel filled on SIOCGIFADDR.
func (ifr *Ifreq) SockAddr() SockAddr {
	var sa SockAddr
	sa.Family = binary.NativeEndian.Uint16(ifr.raw[saFamilyOff:])
	copy(sa.Data[:], ifr.raw[saDataOff:saDataOff+sockAddrDataSize])
	return sa
}
