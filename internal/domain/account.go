package domain

import "strings"

// Account is one bot account, identified by its position in the token source.
type Account struct {
	Index int
	Token string
}

// Session carries everything a single API call needs to act as an account.
type Session struct {
	Token string
	// Proxy is an outbound proxy address; empty means a direct connection.
	Proxy string
}

func (a Account) Session(proxy string) Session {
	return Session{Token: a.Token, Proxy: proxy}
}

func (a Account) MaskedToken() string {
	return MaskToken(a.Token)
}

func MaskToken(token string) string {
	trimmed := strings.TrimSpace(token)
	if len(trimmed) <= 12 {
		return strings.Repeat("*", len(trimmed))
	}

	return trimmed[:6] + "..." + trimmed[len(trimmed)-4:]
}

// NormalizeTokens trims tokens, drops blanks and duplicates, and keeps first-seen order.
func NormalizeTokens(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}

	return result
}

func AccountsFromTokens(tokens []string) []Account {
	normalized := NormalizeTokens(tokens)
	accounts := make([]Account, 0, len(normalized))
	for i, token := range normalized {
		accounts = append(accounts, Account{Index: i + 1, Token: token})
	}

	return accounts
}

// ProxyHost returns the host:port of a proxy address with any scheme and
// credentials removed, or "none" for a direct connection.
func ProxyHost(proxy string) string {
	trimmed := strings.TrimSpace(proxy)
	if trimmed == "" {
		return "none"
	}
	if i := strings.Index(trimmed, "://"); i >= 0 {
		trimmed = trimmed[i+3:]
	}
	if i := strings.LastIndex(trimmed, "@"); i >= 0 {
		trimmed = trimmed[i+1:]
	}

	return strings.TrimSuffix(trimmed, "/")
}
