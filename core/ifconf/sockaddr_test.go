package ifconf

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSockAddrRoundTrip(t *testing.T) {
	for _, s := range []string{"0.0.0.0", "10.0.0.1", "192.168.1.10", "255.255.255.255"} {
		addr := netip.MustParseAddr(s)

		sa, err := SockAddrFromAddr(addr)
		require.NoError(t, err)

		got, err := sa.Addr()
		require.NoError(t, err)
		assert.Equal(t, addr, got)
	}
}

func TestSockAddrLayout(t *testing.T) {
	sa, err := SockAddrFromAddr(netip.MustParseAddr("10.0.0.1"))
	require.NoError(t, err)

	assert.Equal(t, uint16(unix.AF_INET), sa.Family)
	assert.Equal(t, []byte{0, 0}, sa.Data[0:2], "port bytes must stay zero")
	assert.Equal(t, []byte{10, 0, 0, 1}, sa.Data[2:6])
	assert.Equal(t, make([]byte, 8), sa.Data[6:], "trailing bytes must stay zero")
}

func TestSockAddrEncodeRejectsIPv6(t *testing.T) {
	_, err := SockAddrFromAddr(netip.MustParseAddr("2001:db8::1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IPv6 is not supported")
}

func TestSockAddrDecodeRejectsIPv6(t *testing.T) {
	sa := SockAddr{Family: unix.AF_INET6}
	_, err := sa.Addr()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IPv6 is not supported")
}

func TestSockAddrDecodeUnknownFamily(t *testing.T) {
	for _, family := range []uint16{0, unix.AF_UNIX, 0xffff} {
		sa := SockAddr{Family: family}
		_, err := sa.Addr()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown address family")
	}
}
