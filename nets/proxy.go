package nets

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/reusee/pylaunch/configs"
	"github.com/reusee/pylaunch/logs"
	"github.com/reusee/pylaunch/modes"
	"github.com/reusee/pylaunch/vars"
	"golang.org/x/net/proxy"
)

// ConfiguredProxyAddr is the proxy_addr config value.
type ConfiguredProxyAddr string

func (Module) ConfiguredProxyAddr(
	loader configs.Loader,
	logger logs.Logger,
) ConfiguredProxyAddr {
	configured, err := configs.First[ConfiguredProxyAddr](loader, "proxy_addr")
	if err != nil {
		logger.Warn("proxy_addr", "error", err)
	}
	return configured
}

// ProxyAddr is the proxy used by package installs, empty for direct connections.
type ProxyAddr string

func (Module) ProxyAddr(
	mode modes.Mode,
	configured ConfiguredProxyAddr,
	logger logs.Logger,
) (ret ProxyAddr) {
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", Redacted(ret))
		}
	}()

	if mode == modes.ModeDevelopment {
		return ""
	}

	return vars.FirstNonZero(
		ProxyAddr(configured),
		ProxyAddr(os.Getenv("ALL_PROXY")),
		ProxyAddr(os.Getenv("all_proxy")),
		ProxyAddr(os.Getenv("HTTPS_PROXY")),
		ProxyAddr(os.Getenv("https_proxy")),
		ProxyAddr(os.Getenv("HTTP_PROXY")),
		ProxyAddr(os.Getenv("http_proxy")),
	)
}

// FromEnv reports whether addr was picked up from the environment rather than configured.
func (a ProxyAddr) FromEnv(configured ConfiguredProxyAddr) bool {
	return a != "" && string(a) != string(configured)
}

// Redacted returns addr with any password replaced, for logs and diagnostics.
func Redacted(addr ProxyAddr) string {
	u, err := parseProxyAddr(string(addr))
	if err != nil {
		return "<invalid proxy address>"
	}
	return u.Redacted()
}

func parseProxyAddr(addr string) (*url.URL, error) {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	u, err := url.Parse(addr)
	if err != nil {
		// url errors quote the whole input, credentials included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("parse proxy address: %w", err)
	}
	return u, nil
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if proxyAddr == "" {
			return nil, nil
		}
		u, err := parseProxyAddr(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		switch u.Scheme {
		case "socks":
			u.Scheme = "socks5"
		case "http", "https", "socks5", "socks5h":
		default:
			return nil, fmt.Errorf("unsupported proxy scheme: %s", u.Scheme)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("no host in proxy address: %s", u.Redacted())
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

// GetProxyDialer returns the first hop for outgoing connections: a SOCKS dialer, a dialer to
// the HTTP proxy itself, or a direct dialer.
func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	return sync.OnceValues(func() (Dialer, error) {
		direct := &net.Dialer{}
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		switch u.Scheme {
		case "http", "https":
			proxyHost := hostPort(u)
			return DialerFunc(func(ctx context.Context, network, _ string) (net.Conn, error) {
				return direct.DialContext(ctx, network, proxyHost)
			}), nil
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		if d, ok := proxyDialer.(Dialer); ok {
			return d, nil
		}
		return DialerFunc(func(_ context.Context, network, addr string) (net.Conn, error) {
			return proxyDialer.Dial(network, addr)
		}), nil
	})
}

func hostPort(u *url.URL) string {
	if u.Port() != "" {
		return u.Host
	}
	switch u.Scheme {
	case "https":
		return net.JoinHostPort(u.Hostname(), "443")
	case "socks5", "socks5h":
		return net.JoinHostPort(u.Hostname(), "1080")
	}
	return net.JoinHostPort(u.Hostname(), "80")
}
