package main

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/spikeekips/nkeys/codec"
	"github.com/spikeekips/nkeys/keypair"
)

var errVanityFound = xerrors.New("vanity key found")

const vanityAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// the role bytes keep their low 3 bits clear, so the character after the role
// character carries only 2 bits of the key.
const vanityFirstChars = "ABCD"

func normalizeVanityPrefix(prefix string) (string, error) {
	p := strings.ToUpper(prefix)
	if len(p) < 1 {
		return "", xerrors.Errorf("empty prefix")
	}

	if !strings.ContainsRune(vanityFirstChars, rune(p[0])) {
		return "", xerrors.Errorf("prefix must start with one of %q", vanityFirstChars)
	}

	for _, c := range p {
		if !strings.ContainsRune(vanityAlphabet, c) {
			return "", xerrors.Errorf("invalid character in prefix, %q", c)
		}
	}

	return p, nil
}

// findVanity generates pairs of role until the public key, after the role
// character, starts with prefix. Pairs which do not match are cleared.
func findVanity(ctx context.Context, role codec.Role, prefix string, workers int) (keypair.KeyPair, error) {
	p, err := normalizeVanityPrefix(prefix)
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}

	var once sync.Once
	var found keypair.KeyPair
	var tries uint64
	var l sync.Mutex

	eg, ectx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			for {
				select {
				case <-ectx.Done():
					return nil
				default:
				}

				kp, err := keypair.CreatePair(role)
				if err != nil {
					return err
				}

				l.Lock()
				tries++
				l.Unlock()

				pk, err := kp.PublicKey()
				if err != nil {
					kp.Clear()
					return err
				}

				if !strings.HasPrefix(pk[1:], p) {
					kp.Clear()
					continue
				}

				matched := false
				once.Do(func() {
					found = kp
					matched = true
				})
				if !matched {
					kp.Clear()
				}

				return errVanityFound
			}
		})
	}

	err = eg.Wait()
	log.Debug("vanity search finished", "role", role, "prefix", p, "tries", tries)

	switch {
	case xerrors.Is(err, errVanityFound):
		return found, nil
	case err != nil:
		return nil, err
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		return nil, xerrors.Errorf("vanity search stopped")
	}
}
