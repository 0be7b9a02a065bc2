package mirror

import "github.com/HbarSuite/hashgraph-types-sub004/keys"

// TokenInfo mirrors the /api/v1/tokens record.
type TokenInfo struct {
	TokenID          string    `json:"token_id"`
	Name             string    `json:"name"`
	Symbol           string    `json:"symbol"`
	Type             string    `json:"type,omitempty"`
	Decimals         string    `json:"decimals,omitempty"`
	TotalSupply      string    `json:"total_supply,omitempty"`
	MaxSupply        string    `json:"max_supply,omitempty"`
	TreasuryAccount  string    `json:"treasury_account_id,omitempty"`
	AdminKey         *keys.Key `json:"admin_key,omitempty"`
	KycKey           *keys.Key `json:"kyc_key,omitempty"`
	FreezeKey        *keys.Key `json:"freeze_key,omitempty"`
	WipeKey          *keys.Key `json:"wipe_key,omitempty"`
	SupplyKey        *keys.Key `json:"supply_key,omitempty"`
	PauseKey         *keys.Key `json:"pause_key,omitempty"`
	Deleted          bool      `json:"deleted"`
	Memo             string    `json:"memo,omitempty"`
	CreatedTimestamp string    `json:"created_timestamp,omitempty"`
}
