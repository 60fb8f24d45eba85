package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/animix-bot/internal/ports"
)

// ProxySource reads proxy addresses from a text file, one per line.
type ProxySource struct {
	Path   string
	Random ports.Random
}

var _ ports.ProxySource = ProxySource{}

func (s ProxySource) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read proxies file: %w", err)
	}

	return readLines(data), nil
}

// Pick returns a uniformly random proxy, or "" when the list is empty.
func (s ProxySource) Pick(ctx context.Context) (string, error) {
	proxies, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	if len(proxies) == 0 {
		return "", nil
	}

	random := s.Random
	if random == nil {
		random = ports.SystemRandom{}
	}

	return proxies[random.IntN(len(proxies))], nil
}
