// Package crypto provides the signature primitives backing key-list
// authorization: hex key parsing and signature verification for the
// supported key algorithms.
package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// KeyToBytes converts a hex string, with or without the 0x prefix, to bytes.
func KeyToBytes(key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key is empty")
	}

	return hex.DecodeString(strings.TrimPrefix(key, "0x"))
}

// ParseSecp256k1PubKey parses a compressed (33-byte) or uncompressed
// (65-byte) secp256k1 public key.
func ParseSecp256k1PubKey(publicKey []byte) (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(publicKey)
}

// SignSecp256k1 signs the SHA-256 digest of message with a 32-byte
// secp256k1 private key. The returned signature is 65 bytes, 64 signature
// bytes plus one recovery byte.
func SignSecp256k1(privateKey, message []byte) ([]byte, error) {
	if len(privateKey) != 32 {
		return nil, errors.New("private key must be 32 bytes")
	}

	privKey, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(message)

	return ethcrypto.Sign(hash[:], privKey)
}

// VerifySecp256k1 verifies a secp256k1 signature over the SHA-256 digest of
// message. The public key must be 33 bytes compressed; the signature may be
// 64 bytes or 65 bytes with a trailing recovery byte.
func VerifySecp256k1(publicKey, message, signature []byte) bool {
	if len(signature) != 65 || len(publicKey) != 33 || len(message) == 0 {
		return verifySecp256k1WithoutV(publicKey, message, signature)
	}

	hash := sha256.Sum256(message)

	recovered, err := ethcrypto.Ecrecover(hash[:], signature)
	if err != nil {
		return false
	}

	recoveredKey, err := ethcrypto.UnmarshalPubkey(recovered)
	if err != nil {
		return false
	}

	return bytes.Equal(ethcrypto.CompressPubkey(recoveredKey), publicKey)
}

func verifySecp256k1WithoutV(publicKey, message, signature []byte) bool {
	if len(signature) != 64 || len(publicKey) != 33 || len(message) == 0 {
		return false
	}

	if _, err := ParseSecp256k1PubKey(publicKey); err != nil {
		return false
	}

	hash := sha256.Sum256(message)

	return ethcrypto.VerifySignature(publicKey, hash[:], signature)
}

// VerifyEd25519 verifies an ed25519 signature over message.
func VerifyEd25519(publicKey, message, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}

	return ed25519.Verify(ed25519.PublicKey(publicKey), message, signature)
}
