package ifconf

import (
	"net/netip"
	"unsafe"

	"github.com/wlynxg/ifaddr/pkgs/system"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ioctlConn drives the netdevice ioctls over a plain AF_INET datagram
// socket. The fd acts as a control handle for any interface on the
// host regardless of the socket's own family or type.
type ioctlConn struct {
	fd int
}

// Dial opens the control socket.
func Dial() (Conn, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Wrap(err, "open control socket")
	}
	return &ioctlConn{fd: fd}, nil
}

func (c *ioctlConn) GetAddr(name string) (netip.Addr, error) {
	ifr, err := NewIfreq(name)
	if err != nil {
		return netip.Addr{}, err
	}
	if err := c.ioctl(unix.SIOCGIFADDR, ifr); err != nil {
		return netip.Addr{}, errors.Wrapf(err, "get address of %s", name)
	}
	return ifr.SockAddr().Addr()
}

func (c *ioctlConn) SetAddr(name string, addr netip.Addr) error {
	ifr, err := NewIfreq(name)
	if err != nil {
		return err
	}
	sa, err := SockAddrFromAddr(addr)
	if err != nil {
		return err
	}
	ifr.SetSockAddr(sa)
	if err := c.ioctl(unix.SIOCSIFADDR, ifr); err != nil {
		return errors.Wrapf(err, "set address of %s", name)
	}
	return nil
}

func (c *ioctlConn) Close() error {
	return unix.Close(c.fd)
}

func (c *ioctlConn) ioctl(request uint, ifr *Ifreq) error {
	return system.Ioctl(uintptr(c.fd), uintptr(request), uintptr(unsafe.Pointer(&ifr.raw[0])))
}
