package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ErrNotConnected = errors.New("wallet provider not connected")
	ErrEmptyResult  = errors.New("provider returned no accounts")
)

const dialTimeout = 10 * time.Second

// Conn is a connection handle to a wallet provider RPC endpoint. The zero
// value is not usable; create one with Dial. A Conn starts without a primary
// account; Connect populates it.
type Conn struct {
	client *rpc.Client
	url    string

	// mu protects account. Request is safe for concurrent use because
	// rpc.Client is; only the connected-account cache needs guarding.
	mu      sync.RWMutex
	account common.Address
	hasAcct bool
}

// Dial opens a connection to the wallet provider at the given URL.
// HTTP(S) and WebSocket endpoints are supported.
func Dial(ctx context.Context, url string) (*Conn, error) {
	if url == "" {
		return nil, fmt.Errorf("provider URL is required")
	}

	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial provider %s: %w", url, err)
	}

	return &Conn{client: client, url: url}, nil
}

// URL returns the endpoint this connection was dialed against.
func (c *Conn) URL() string {
	return c.url
}

// Request issues a raw JSON-RPC call to the provider. Interactive methods
// (those that trigger an approval prompt in the user's wallet) block until
// the user responds, so callers should pass a context they are prepared to
// wait on.
func (c *Conn) Request(ctx context.Context, method string, result any, params ...any) error {
	return c.client.CallContext(ctx, result, method, params...)
}

// Connect performs a bare wallet_connect and caches the returned primary
// account. Safe to call more than once; each call refreshes the cache.
func (c *Conn) Connect(ctx context.Context) (common.Address, error) {
	var result ConnectResult
	params := ConnectParams{Version: ConnectVersion}
	if err := c.Request(ctx, MethodWalletConnect, &result, params); err != nil {
		return common.Address{}, fmt.Errorf("wallet_connect failed: %w", err)
	}

	if len(result.Accounts) == 0 {
		return common.Address{}, ErrEmptyResult
	}

	addr := result.Accounts[0].Address
	if !common.IsHexAddress(addr) {
		return common.Address{}, fmt.Errorf("provider returned invalid account address %q", addr)
	}

	account := common.HexToAddress(addr)
	c.mu.Lock()
	c.account = account
	c.hasAcct = true
	c.mu.Unlock()

	return account, nil
}

// Account returns the cached primary account, or ErrNotConnected if Connect
// has not succeeded on this handle.
func (c *Conn) Account() (common.Address, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.hasAcct {
		return common.Address{}, ErrNotConnected
	}
	return c.account, nil
}

// SetAccount seeds the primary account cache, used when restoring a session
// that was connected in a previous run.
func (c *Conn) SetAccount(account common.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.account = account
	c.hasAcct = true
}

// Close releases the underlying RPC client.
func (c *Conn) Close() {
	c.client.Close()
}
