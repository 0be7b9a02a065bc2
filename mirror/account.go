// Package mirror holds the flat data shapes exchanged with the ledger
// mirror REST API. These records carry no validation logic of their own and
// are consumed and produced as opaque structured values; the embedded key
// fields reuse the validated keys types.
package mirror

import "github.com/HbarSuite/hashgraph-types-sub004/keys"

// TokenBalance is one token position held by an account.
type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

// Balance is an account's balance snapshot at a consensus timestamp.
type Balance struct {
	Timestamp string         `json:"timestamp"`
	Balance   int64          `json:"balance"`
	Tokens    []TokenBalance `json:"tokens,omitempty"`
}

// AccountInfo mirrors the /api/v1/accounts record.
type AccountInfo struct {
	Account                       string    `json:"account"`
	Alias                         string    `json:"alias,omitempty"`
	Balance                       *Balance  `json:"balance,omitempty"`
	Deleted                       bool      `json:"deleted"`
	EVMAddress                    string    `json:"evm_address,omitempty"`
	Key                           *keys.Key `json:"key,omitempty"`
	MaxAutomaticTokenAssociations int32     `json:"max_automatic_token_associations,omitempty"`
	Memo                          string    `json:"memo,omitempty"`
	ReceiverSigRequired           bool      `json:"receiver_sig_required,omitempty"`
	StakedAccountID               string    `json:"staked_account_id,omitempty"`
	StakedNodeID                  *int64    `json:"staked_node_id,omitempty"`
}
