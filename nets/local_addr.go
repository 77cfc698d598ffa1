package nets

import (
	"context"
	"net"
)

type IsLocalAddr func(ctx context.Context, addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(ctx context.Context, addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}

		if ip := net.ParseIP(host); ip != nil {
			return ip.IsLoopback() || ip.IsPrivate(), nil
		}

		addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			// unresolvable hosts go through the proxy
			return false, nil
		}

		for _, addr := range addrs {
			if addr.IP.IsLoopback() || addr.IP.IsPrivate() {
				return true, nil
			}
		}

		return false, nil
	}
}
