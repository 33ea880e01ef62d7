package core

import (
	"errors"
	"fmt"
	"strings"
)

const (
	customIDSeparator = ":"

	// Discord rejects longer custom IDs
	maxCustomIDLength = 100
)

var (
	ErrMalformedCustomID = errors.New("malformed custom ID")
	ErrCustomIDTooLong   = fmt.Errorf("custom ID longer than %d characters", maxCustomIDLength)
)

// CustomID addresses a component as domain:action[:target[:args...]]. For
// sheets the target is the owner's user ID.
type CustomID struct {
	Domain string
	Action string
	Target string
	Args   []string
}

// Arg is the i-th argument, empty when absent
func (c *CustomID) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

func (c *CustomID) parts() ([]string, error) {
	if c.Domain == "" || c.Action == "" {
		return nil, fmt.Errorf("%w: domain and action are required", ErrMalformedCustomID)
	}
	if c.Target == "" && len(c.Args) > 0 {
		return nil, fmt.Errorf("%w: args need a target", ErrMalformedCustomID)
	}

	parts := make([]string, 0, 3+len(c.Args))
	parts = append(parts, c.Domain, c.Action)
	if c.Target != "" {
		parts = append(parts, c.Target)
	}
	parts = append(parts, c.Args...)

	for _, part := range parts {
		if strings.Contains(part, customIDSeparator) {
			return nil, fmt.Errorf("%w: %q contains %q", ErrMalformedCustomID, part, customIDSeparator)
		}
	}
	return parts, nil
}

func (c *CustomID) Encode() (string, error) {
	parts, err := c.parts()
	if err != nil {
		return "", err
	}
	encoded := strings.Join(parts, customIDSeparator)
	if len(encoded) > maxCustomIDLength {
		return "", ErrCustomIDTooLong
	}
	return encoded, nil
}

// ParseCustomID splits a custom ID produced by Encode
func ParseCustomID(raw string) (*CustomID, error) {
	parts := strings.Split(raw, customIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedCustomID, raw)
	}

	id := &CustomID{Domain: parts[0], Action: parts[1]}
	if len(parts) > 2 {
		id.Target = parts[2]
	}
	if len(parts) > 3 {
		id.Args = parts[3:]
	}
	return id, nil
}

// CustomIDBuilder encodes custom IDs for one domain. Builder methods panic on
// invalid input since IDs are built from trusted values at render time.
type CustomIDBuilder struct {
	domain string
}

func NewCustomIDBuilder(domain string) *CustomIDBuilder {
	return &CustomIDBuilder{domain: domain}
}

func (b *CustomIDBuilder) must(id *CustomID) string {
	encoded, err := id.Encode()
	if err != nil {
		panic(err)
	}
	return encoded
}

// Button encodes a button ID targeting an owner
func (b *CustomIDBuilder) Button(action, target string, args ...string) string {
	return b.must(&CustomID{Domain: b.domain, Action: action, Target: target, Args: args})
}

// Select encodes a select menu ID; the choice arrives in the values
func (b *CustomIDBuilder) Select(action, target string) string {
	return b.must(&CustomID{Domain: b.domain, Action: action, Target: target})
}
