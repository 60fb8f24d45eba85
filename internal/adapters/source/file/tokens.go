package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/animix-bot/internal/domain"
	"github.com/bnema/animix-bot/internal/ports"
	"gopkg.in/yaml.v3"
)

// TokenSource reads account tokens from a text file with one token per line,
// or from a YAML file with a top-level tokens list.
type TokenSource struct {
	Path string
}

var _ ports.TokenSource = TokenSource{}

type tokensFileSchema struct {
	Tokens []string `yaml:"tokens"`
}

// Accounts re-reads the file on every call so edits apply on the next pass.
// A missing file yields no accounts.
func (s TokenSource) Accounts(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tokens file: %w", err)
	}

	var tokens []string
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		var file tokensFileSchema
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode tokens file: %w", err)
		}
		tokens = file.Tokens
	default:
		tokens = readLines(data)
	}

	return domain.AccountsFromTokens(tokens), nil
}

func readLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
