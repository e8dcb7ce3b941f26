package nets

import (
	"context"
	"net"
)

// IsLocalAddr reports whether addr resolves to a loopback or private address.
// Lookup failures count as not local.
type IsLocalAddr func(ctx context.Context, addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	return func(ctx context.Context, addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if host == "localhost" {
			return true
		}
		if ip := net.ParseIP(host); ip != nil {
			return ip.IsLoopback() || ip.IsPrivate()
		}
		addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			return false
		}
		for _, a := range addrs {
			if a.IP.IsLoopback() || a.IP.IsPrivate() {
				return true
			}
		}
		return false
	}
}
