package nets

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/reusee/pylaunch/modes"
)

const DefaultIndexURL = "https://pypi.org/simple"

// ProbeIndex checks that the package index host accepts TCP connections through the configured first hop.
type ProbeIndex func(ctx context.Context, indexURL string) error

func (Module) ProbeIndex(
	mode modes.Mode,
	dialer Dialer,
) ProbeIndex {
	return func(ctx context.Context, indexURL string) error {
		if mode == modes.ModeDevelopment {
			return nil
		}
		if indexURL == "" {
			indexURL = DefaultIndexURL
		}
		u, err := url.Parse(indexURL)
		if err != nil {
			return fmt.Errorf("parse index url: %w", err)
		}
		if u.Hostname() == "" {
			// file:// or a local path
			return nil
		}
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		conn, err := dialer.DialContext(ctx, "tcp", hostPort(u))
		if err != nil {
			return fmt.Errorf("probe %s: %w", u.Host, err)
		}
		return conn.Close()
	}
}
