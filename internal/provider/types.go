package provider

// JSON-RPC methods exposed by the wallet provider.
const (
	MethodWalletConnect = "wallet_connect"
)

// ConnectVersion is the capability protocol version subkit speaks.
const ConnectVersion = "1"

// Key type tags understood by the provider.
const (
	KeyTypeWebAuthnP256 = "webauthn-p256"
)

// ConnectParams is the single parameter object of a wallet_connect request.
// A bare request (nil Capabilities) establishes a connection and returns the
// primary account; attaching the addSubAccount capability additionally asks
// the provider to create and link a sub-account in the same round trip.
type ConnectParams struct {
	Version      string        `json:"version"`
	Capabilities *Capabilities `json:"capabilities,omitempty"`
}

// Capabilities carries the optional capability requests of wallet_connect.
type Capabilities struct {
	AddSubAccount *AddSubAccountRequest `json:"addSubAccount,omitempty"`
}

// AddSubAccountRequest asks the provider to create a sub-account authorized
// by the listed keys.
type AddSubAccountRequest struct {
	Account SubAccountSpec `json:"account"`
}

// SubAccountSpec describes the sub-account to create.
type SubAccountSpec struct {
	Type string       `json:"type"` // always "create"
	Keys []AccountKey `json:"keys"`
}

// AccountKey registers a signing key with the provider. Key is the
// hex-encoded public key; Type tags the signature scheme so the provider
// knows how to verify signatures from it.
type AccountKey struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// ConnectResult is the wallet_connect response.
type ConnectResult struct {
	Accounts []AccountEntry `json:"accounts"`
}

// AccountEntry is one connected account in a wallet_connect response.
type AccountEntry struct {
	Address      string              `json:"address"`
	Capabilities AccountCapabilities `json:"capabilities"`
}

// AccountCapabilities holds per-account capability results. Fields are only
// populated when the corresponding capability was requested.
type AccountCapabilities struct {
	AddSubAccount *SubAccountResult `json:"addSubAccount,omitempty"`
}

// SubAccountResult reports the sub-account the provider created.
type SubAccountResult struct {
	Address string `json:"address"`
}

// NewCreateSubAccountParams builds the wallet_connect parameter object that
// requests creation of a sub-account authorized by a single key.
func NewCreateSubAccountParams(keyType, publicKey string) ConnectParams {
	return ConnectParams{
		Version: ConnectVersion,
		Capabilities: &Capabilities{
			AddSubAccount: &AddSubAccountRequest{
				Account: SubAccountSpec{
					Type: "create",
					Keys: []AccountKey{{Type: keyType, Key: publicKey}},
				},
			},
		},
	}
}
