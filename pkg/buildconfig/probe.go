package buildconfig

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
)

// DefaultProbeTimeout bounds one endpoint probe
const DefaultProbeTimeout = 10 * time.Second

// ErrNoEndpoint is returned when probing a profile without a URL
var ErrNoEndpoint = errors.New("network has no endpoint")

// ProbeResult reports what a live endpoint answered
type ProbeResult struct {
	Network string        `json:"network" yaml:"network"`
	ChainID *big.Int      `json:"chain_id" yaml:"chain_id"`
	Block   uint64        `json:"block" yaml:"block"`
	Latency time.Duration `json:"latency" yaml:"latency"`
}

// Probe dials n.URL and reads its chain id and head block.
// It only issues read calls and never signs anything.
func Probe(ctx context.Context, n NetworkProfile, timeout time.Duration) (*ProbeResult, error) {
	if n.URL == "" {
		return nil, fmt.Errorf("%s: %w", n.Name, ErrNoEndpoint)
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	client, err := ethclient.DialContext(ctx, n.URL)
	if err != nil {
		return nil, scrubURL(fmt.Errorf("%s: dial endpoint: %w", n.Name, err), n.URL)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, scrubURL(fmt.Errorf("%s: get chain id: %w", n.Name, err), n.URL)
	}
	block, err := client.BlockNumber(ctx)
	if err != nil {
		return nil, scrubURL(fmt.Errorf("%s: get block number: %w", n.Name, err), n.URL)
	}

	return &ProbeResult{
		Network: n.Name,
		ChainID: chainID,
		Block:   block,
		Latency: time.Since(start),
	}, nil
}

// scrubbedError hides the endpoint URL, which often embeds an API key,
// while keeping the original error reachable through errors.Is/As.
type scrubbedError struct {
	msg string
	err error
}

func (e *scrubbedError) Error() string { return e.msg }
func (e *scrubbedError) Unwrap() error { return e.err }

// scrubURL removes every rendering of raw from err's text. url.URL and
// net/http print the password differently ("xxxxx" and "***"), so each form
// is matched; any leftover path, query or password is masked on its own.
func scrubURL(err error, raw string) error {
	if err == nil || raw == "" {
		return err
	}
	orig := err.Error()
	redacted := RedactURL(raw)
	msg := strings.ReplaceAll(orig, raw, redacted)

	if u, perr := url.Parse(raw); perr == nil {
		forms := []string{u.String(), u.Redacted()}
		var parts []string
		if pass, ok := u.User.Password(); ok && pass != "" {
			forms = append(forms, strings.Replace(u.String(), pass+"@", "***@", 1))
			parts = append(parts, pass)
		}
		for _, form := range forms {
			msg = strings.ReplaceAll(msg, form, redacted)
		}

		if u.RawQuery != "" {
			parts = append(parts, u.RawQuery)
		}
		if p := u.EscapedPath(); p != "" && p != "/" {
			parts = append(parts, p)
		}
		if u.Path != "" && u.Path != "/" {
			parts = append(parts, u.Path)
		}
		for _, part := range parts {
			msg = strings.ReplaceAll(msg, part, mask)
		}
	}

	if msg == orig {
		return err
	}
	return &scrubbedError{msg: msg, err: err}
}
