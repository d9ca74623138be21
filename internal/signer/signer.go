package signer

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrWrongCurve = errors.New("stored signer key is not a P-256 key")
	ErrKeyCorrupt = errors.New("stored signer key is corrupt")
)

const (
	keyFileName = "signer.pem"
	keyPerms    = 0600
	pemKeyType  = "PRIVATE KEY"
)

// Signer is a reference to a local P-256 key pair registered with the wallet
// provider as a "webauthn-p256" key. The private half never leaves the local
// key store; callers only see the public point and a stable handle.
type Signer struct {
	// PublicKey is the hex-encoded uncompressed SEC1 point (0x04 || X || Y).
	PublicKey string
	// AccountHandle is a short stable fingerprint of the public key, used to
	// name this signer in logs and in the provider's key registry.
	AccountHandle string
}

// Provisioner creates or loads the local signer key. One key per data
// directory; repeated GetSigner calls return the same signer.
type Provisioner struct {
	dataDir string
}

// NewProvisioner creates a provisioner rooted at dataDir.
func NewProvisioner(dataDir string) (*Provisioner, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Provisioner{dataDir: dataDir}, nil
}

// GetSigner returns the local signer, generating and persisting a new P-256
// key only if none exists yet. Idempotent from the caller's perspective.
func (p *Provisioner) GetSigner(ctx context.Context) (Signer, error) {
	if err := ctx.Err(); err != nil {
		return Signer{}, err
	}

	key, err := p.loadKey()
	if err == nil {
		return describe(key), nil
	}
	if !os.IsNotExist(err) {
		return Signer{}, err
	}

	key, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return Signer{}, fmt.Errorf("failed to generate signer key: %w", err)
	}

	if err := p.saveKey(key); err != nil {
		return Signer{}, err
	}

	return describe(key), nil
}

// Exists reports whether a signer key has already been provisioned.
func (p *Provisioner) Exists() bool {
	_, err := os.Stat(p.keyPath())
	return err == nil
}

func (p *Provisioner) keyPath() string {
	return filepath.Join(p.dataDir, keyFileName)
}

func (p *Provisioner) loadKey() (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(p.keyPath())
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemKeyType {
		return nil, ErrKeyCorrupt
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyCorrupt, err)
	}

	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok || key.Curve != elliptic.P256() {
		return nil, ErrWrongCurve
	}

	return key, nil
}

// saveKey writes the key PEM-encoded with owner-only permissions. Write to a
// temp file then rename so a crash never leaves a half-written key behind.
func (p *Provisioner) saveKey(key *ecdsa.PrivateKey) error {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return fmt.Errorf("failed to encode signer key: %w", err)
	}

	data := pem.EncodeToMemory(&pem.Block{Type: pemKeyType, Bytes: der})

	tmpPath := p.keyPath() + ".tmp"
	if err := os.WriteFile(tmpPath, data, keyPerms); err != nil {
		return fmt.Errorf("failed to write signer key: %w", err)
	}

	if err := os.Rename(tmpPath, p.keyPath()); err != nil {
		_ = os.Remove(tmpPath) // Best-effort cleanup of temp file
		return fmt.Errorf("failed to save signer key: %w", err)
	}

	return nil
}

func describe(key *ecdsa.PrivateKey) Signer {
	point := elliptic.Marshal(elliptic.P256(), key.PublicKey.X, key.PublicKey.Y)
	return Signer{
		PublicKey:     "0x" + hex.EncodeToString(point),
		AccountHandle: hex.EncodeToString(crypto.Keccak256(point)[:8]),
	}
}
