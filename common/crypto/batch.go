package crypto

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/HbarSuite/hashgraph-types-sub004/keys"
)

// Verification pairs key material with one signature to check.
type Verification struct {
	Type      keys.KeyType
	PublicKey []byte
	Message   []byte
	Signature []byte
}

// Verify checks a single verification against its declared key type.
func Verify(v Verification) (bool, error) {
	switch v.Type {
	case keys.KeyTypeEd25519:
		return VerifyEd25519(v.PublicKey, v.Message, v.Signature), nil
	case keys.KeyTypeEcdsaSecp256K1:
		return VerifySecp256k1(v.PublicKey, v.Message, v.Signature), nil
	default:
		return false, &keys.UnsupportedKeyTypeError{Type: string(v.Type)}
	}
}

// VerifyAll checks every verification concurrently and returns the first
// failure, identified by its position in items. Signature checks are CPU
// bound, so a batch collected for an M-of-N key list verifies in parallel.
func VerifyAll(ctx context.Context, items []Verification) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := range items {
		item := items[i]
		index := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ok, err := Verify(item)
			if err != nil {
				return fmt.Errorf("verification %d: %w", index, err)
			}
			if !ok {
				return fmt.Errorf("verification %d: signature mismatch", index)
			}

			return nil
		})
	}

	return g.Wait()
}
