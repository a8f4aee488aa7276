package buildconfig

import (
	"net/url"
	"strings"
)

const mask = "****"

// Redacted returns a copy safe to print: credentials are shortened and
// RPC URLs lose their path and query, where providers embed API keys.
func (c *Configuration) Redacted() *Configuration {
	out := c.Clone()
	for i := range out.Networks {
		n := &out.Networks[i]
		n.URL = RedactURL(n.URL)
		for j, acct := range n.Accounts {
			n.Accounts[j] = RedactKey(acct)
		}
	}
	return out
}

// RedactKey keeps the first and last four hex digits of a 32-byte key.
// Anything else, a mnemonic or a malformed value, is masked completely.
func RedactKey(key string) string {
	if key == "" {
		return ""
	}
	body := strings.TrimPrefix(key, "0x")
	if len(body) != 64 || !isHex(body) {
		return mask
	}
	return "0x" + body[:4] + "…" + body[len(body)-4:]
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// RedactURL keeps scheme and host only
func RedactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return mask
	}
	out := u.Scheme + "://" + u.Host
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
		out += "/" + mask
	}
	return out
}
