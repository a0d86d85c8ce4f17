// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// Token is a bot token in locked, non-dumpable memory. A Token must not
// be copied after creation. After Close, any read panics.
type Token struct {
	mu     sync.Mutex
	data   []byte
	length int
	closed bool
}

// NewToken copies source into protected memory and zeroes source.
// Surrounding whitespace is dropped. An empty token is an error.
func NewToken(source []byte) (*Token, error) {
	defer Zero(source)

	trimmed := bytes.TrimSpace(source)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("secret: token is empty")
	}

	data, err := unix.Mmap(-1, 0, len(trimmed), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}
	if err := unix.Mlock(data); err != nil {
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: mlock failed: %w", err)
	}
	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(data)
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: madvise(MADV_DONTDUMP) failed: %w", err)
	}

	copy(data, trimmed)
	return &Token{data: data, length: len(trimmed)}, nil
}

// TokenFromEnv reads the token from the named environment variable and
// removes the variable from the process environment so that child
// processes do not inherit it.
func TokenFromEnv(name string) (*Token, error) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return nil, fmt.Errorf("secret: %s is not set", name)
	}
	if err := os.Unsetenv(name); err != nil {
		return nil, fmt.Errorf("secret: unsetting %s: %w", name, err)
	}
	return NewToken([]byte(value))
}

// ReadToken reads the token from a file, or the first line of stdin if
// path is "-".
func ReadToken(path string) (*Token, error) {
	var data []byte
	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("secret: reading stdin: %w", err)
			}
			return nil, fmt.Errorf("secret: stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("secret: %w", err)
		}
	}
	return NewToken(data)
}

// AuthorizationHeader returns the Authorization header value for the
// token ("Bot <token>"). The result is a heap copy; build it per request
// and let it go.
func (t *Token) AuthorizationHeader() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		panic("secret: read from closed token")
	}
	return "Bot " + string(t.data[:t.length])
}

// Equal reports whether the token equals candidate, in constant time
// with respect to the token's contents.
func (t *Token) Equal(candidate []byte) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		panic("secret: read from closed token")
	}
	if len(candidate) != t.length {
		return false
	}
	var difference byte
	for index := range candidate {
		difference |= candidate[index] ^ t.data[index]
	}
	return difference == 0
}

// Len returns the token length in bytes.
func (t *Token) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.length
}

// String never reveals the token, so a Token is safe to log.
func (t *Token) String() string {
	return fmt.Sprintf("secret.Token(%d bytes)", t.Len())
}

// Close zeroes and releases the token memory. Close is idempotent.
func (t *Token) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	Zero(t.data)

	var firstError error
	if err := unix.Munlock(t.data); err != nil {
		firstError = fmt.Errorf("secret: munlock failed: %w", err)
	}
	if err := unix.Munmap(t.data); err != nil && firstError == nil {
		firstError = fmt.Errorf("secret: munmap failed: %w", err)
	}
	t.data = nil
	return firstError
}

// Zero overwrites data with zeros.
func Zero(data []byte) {
	for index := range data {
		data[index] = 0
	}
}
