package request

import (
	"fmt"
	"net/url"
	"strings"
)

// KVPair is one key=value CLI token destined for a POST JSON body.
type KVPair struct {
	Key   string
	Value string
}

// ParseURL validates that raw is a well-formed absolute URL and returns it
// unchanged. No network access happens here.
func ParseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("invalid url %q: not an absolute URL", raw)
	}
	return raw, nil
}

// ParseKVPair splits a key=value token on the first "=". The value may be
// empty; a token without "=" fails.
func ParseKVPair(token string) (KVPair, error) {
	key, value, found := strings.Cut(token, "=")
	if !found {
		return KVPair{}, fmt.Errorf("invalid key=value pair %q", token)
	}
	return KVPair{Key: key, Value: value}, nil
}

// ParseKVPairs parses every token, preserving order.
func ParseKVPairs(tokens []string) ([]KVPair, error) {
	pairs := make([]KVPair, 0, len(tokens))
	for _, token := range tokens {
		pair, err := ParseKVPair(token)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
