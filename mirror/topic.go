package mirror

import "github.com/HbarSuite/hashgraph-types-sub004/keys"

// TopicInfo mirrors the /api/v1/topics record for a consensus topic.
type TopicInfo struct {
	TopicID          string    `json:"topic_id"`
	AdminKey         *keys.Key `json:"admin_key,omitempty"`
	SubmitKey        *keys.Key `json:"submit_key,omitempty"`
	AutoRenewAccount string    `json:"auto_renew_account,omitempty"`
	AutoRenewPeriod  int64     `json:"auto_renew_period,omitempty"`
	CreatedTimestamp string    `json:"created_timestamp,omitempty"`
	Deleted          bool      `json:"deleted"`
	Memo             string    `json:"memo,omitempty"`
}

// TopicMessage mirrors one message returned by /api/v1/topics/{id}/messages.
type TopicMessage struct {
	ConsensusTimestamp string `json:"consensus_timestamp"`
	TopicID            string `json:"topic_id"`
	Message            string `json:"message"`
	RunningHash        string `json:"running_hash"`
	RunningHashVersion int32  `json:"running_hash_version"`
	SequenceNumber     int64  `json:"sequence_number"`
	PayerAccountID     string `json:"payer_account_id,omitempty"`
}
