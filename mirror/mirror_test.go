package mirror

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HbarSuite/hashgraph-types-sub004/keys"
)

func TestAccountInfoDecoding(t *testing.T) {
	payload := []byte(`{
		"account": "0.0.1234",
		"deleted": false,
		"balance": {"timestamp": "1666872600.000000000", "balance": 100000000, "tokens": [{"token_id": "0.0.5678", "balance": 5}]},
		"key": {"type": "Ed25519", "key": "e0c8b2a697fd490dbbce6bad24b846b0cd88e6ccbdd72e2b8ae2d25dcd342c12"},
		"memo": "treasury"
	}`)

	var account AccountInfo
	require.NoError(t, json.Unmarshal(payload, &account))

	assert.Equal(t, "0.0.1234", account.Account)
	require.NotNil(t, account.Key)

	typ, ok := account.Key.Type()
	assert.True(t, ok)
	assert.Equal(t, keys.KeyTypeEd25519, typ)
}

func TestAccountInfoRejectsInvalidKey(t *testing.T) {
	payload := []byte(`{
		"account": "0.0.1234",
		"key": {"type": "Ed25519", "key": "abcd"}
	}`)

	var account AccountInfo
	err := json.Unmarshal(payload, &account)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ed25519 public key must be 32 bytes")
}

func TestTopicInfoDecoding(t *testing.T) {
	payload := []byte(`{
		"topic_id": "0.0.29613327",
		"memo": "appnet DID topic",
		"submit_key": {"type": "ProtobufEncoded", "key": "0a051a030a0100"},
		"deleted": false
	}`)

	var topic TopicInfo
	require.NoError(t, json.Unmarshal(payload, &topic))
	assert.Equal(t, "0.0.29613327", topic.TopicID)
	require.NotNil(t, topic.SubmitKey)
	assert.Nil(t, topic.AdminKey)
}
