package subaccount

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/yolodolo42/subkit/internal/logger"
	"github.com/yolodolo42/subkit/internal/provider"
	"github.com/yolodolo42/subkit/internal/session"
	"github.com/yolodolo42/subkit/internal/signer"
)

var (
	// ErrNotConnected is returned when creation is attempted without an
	// active provider connection and primary account. No request is sent.
	ErrNotConnected = errors.New("not connected to wallet provider")

	// ErrProtocol is returned when the provider's response does not carry
	// the expected sub-account payload.
	ErrProtocol = errors.New("unexpected provider response")
)

// Requester is the wallet-provider connection handle the provisioner needs.
// *provider.Conn satisfies it; tests substitute a fake.
type Requester interface {
	Request(ctx context.Context, method string, result any, params ...any) error
}

// SignerProvider supplies the local signing key to authorize on the new
// sub-account. *signer.Provisioner satisfies it.
type SignerProvider interface {
	GetSigner(ctx context.Context) (signer.Signer, error)
}

// Provisioner creates sub-accounts linked to the connected primary account.
// The session is its only side-effect target: one write on success, none on
// any failure path.
type Provisioner struct {
	conn    Requester
	signers SignerProvider
	sess    *session.Session
}

// NewProvisioner wires a provisioner to a connection, a signer source, and
// the session it should update.
func NewProvisioner(conn Requester, signers SignerProvider, sess *session.Session) *Provisioner {
	return &Provisioner{conn: conn, signers: signers, sess: sess}
}

// Create asks the provider to create a new sub-account linked to the current
// primary account, authorized by the local signer's public key, and returns
// the confirmed address.
//
// The request is interactive: it blocks until the user approves or rejects
// it in their wallet, so the round trip can take arbitrarily long. Creation
// is not idempotent at the protocol level; calling Create again may yield a
// second, distinct sub-account, and the new address overwrites the cached
// one. Callers gate repeat invocations.
func (p *Provisioner) Create(ctx context.Context) (string, error) {
	if p.conn == nil || !p.sess.Connected() {
		return "", ErrNotConnected
	}

	sig, err := p.signers.GetSigner(ctx)
	if err != nil {
		return "", fmt.Errorf("signer provisioning failed: %w", err)
	}

	logger.Debug("requesting sub-account for %s with signer %s", p.sess.PrimaryAccount(), sig.AccountHandle)

	params := provider.NewCreateSubAccountParams(provider.KeyTypeWebAuthnP256, sig.PublicKey)

	var result provider.ConnectResult
	if err := p.conn.Request(ctx, provider.MethodWalletConnect, &result, params); err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}

	address, err := extractAddress(result)
	if err != nil {
		return "", err
	}

	p.sess.SetSubAccount(address)
	logger.Info("sub-account %s linked to %s", address, p.sess.PrimaryAccount())

	return address, nil
}

// extractAddress pulls the confirmed sub-account address out of a
// wallet_connect response. The provider contract places it on the first
// account entry's addSubAccount capability.
func extractAddress(result provider.ConnectResult) (string, error) {
	if len(result.Accounts) == 0 {
		return "", fmt.Errorf("%w: empty accounts list", ErrProtocol)
	}

	payload := result.Accounts[0].Capabilities.AddSubAccount
	if payload == nil || payload.Address == "" {
		return "", fmt.Errorf("%w: missing addSubAccount address", ErrProtocol)
	}

	if !common.IsHexAddress(payload.Address) {
		return "", fmt.Errorf("%w: invalid sub-account address %q", ErrProtocol, payload.Address)
	}

	return payload.Address, nil
}
