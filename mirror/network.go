package mirror

// Rate is one leg of the network exchange rate.
type Rate struct {
	CentEquivalent int64 `json:"cent_equivalent"`
	HbarEquivalent int64 `json:"hbar_equivalent"`
	ExpirationTime int64 `json:"expiration_time"`
}

// ExchangeRate mirrors the /api/v1/network/exchangerate record.
type ExchangeRate struct {
	CurrentRate Rate   `json:"current_rate"`
	NextRate    Rate   `json:"next_rate"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// NetworkSupply mirrors the /api/v1/network/supply record.
type NetworkSupply struct {
	ReleasedSupply string `json:"released_supply"`
	TotalSupply    string `json:"total_supply"`
	Timestamp      string `json:"timestamp"`
}
