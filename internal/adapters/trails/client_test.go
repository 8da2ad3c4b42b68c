package trails

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailkit/regname/internal/domain"
)

const (
	testWalletAddress = "0x00000000000000000000000000000000000000aa"
	testTrailPrefix   = "/trails/trail-1/versions/v1/"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		BaseURL:       server.URL,
		TrailID:       "trail-1",
		VersionID:     "v1",
		PricingNodeID: "node-price",
		ExpiryNodeID:  "node-expiry",
		HTTPClient:    server.Client(),
	})
	require.NoError(t, err)

	return client
}

func decodeBody(t *testing.T, r *http.Request, target any) {
	t.Helper()

	require.Equal(t, http.MethodPost, r.Method)
	require.Equal(t, "application/json", r.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(r.Body).Decode(target))
}

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	require.Error(t, err)

	_, err = NewClient(ClientConfig{BaseURL: "http://localhost", TrailID: "t", VersionID: "v"})
	require.Error(t, err)
}

func TestListExecutionsDecodesWalletExecutions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, testTrailPrefix+"executions/query", r.URL.Path)

		var request struct {
			WalletAddresses []string `json:"walletAddresses"`
		}
		decodeBody(t, r, &request)
		require.Equal(t, []string{testWalletAddress}, request.WalletAddresses)

		_, _ = w.Write([]byte(`{
			"walletExecutions": [
				{
					"walletAddress": "` + testWalletAddress + `",
					"executions": [
						{
							"id": "exec-1",
							"createdAt": "2026-05-01T10:00:00Z",
							"updatedAt": "2026-05-01T11:00:00Z",
							"steps": [
								{"index": 0, "txHash": "` + domain.ZeroTxHash + `", "createdAt": "2026-05-01T10:00:00Z"},
								{"index": 1, "nodeId": "node-register", "txHash": "0xabc123", "blockNumber": 12, "blockTimestamp": 1767264000, "createdAt": "2026-05-01T10:30:00Z"}
							]
						}
					]
				},
				{"walletAddress": "0xother", "executions": [{"id": "exec-foreign"}]}
			]
		}`))
	}))

	executions, err := client.ListExecutions(context.Background(), testWalletAddress)
	require.NoError(t, err)
	require.Len(t, executions, 1)
	assert.Equal(t, domain.ExecutionID("exec-1"), executions[0].ID)
	require.Len(t, executions[0].Steps, 2)
	assert.False(t, executions[0].Steps[0].Completed())
	assert.True(t, executions[0].Steps[1].Completed())
	assert.Equal(t, 2, executions[0].NextStepIndex())
}

func TestReadPriceParsesAmountPair(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, testTrailPrefix+"nodes/node-price/read", r.URL.Path)

		var request map[string]json.RawMessage
		decodeBody(t, r, &request)
		assert.JSONEq(t, `"latest"`, string(request["execution"]))
		assert.JSONEq(t, `{"name":{"value":"alice"},"duration":{"value":31536000}}`, string(request["userInputs"]))

		_, _ = w.Write([]byte(`{
			"outputs": {
				"arg_0": {
					"value": [
						{"value": "1000000000000000000"},
						{"value": "500000000000000000"}
					]
				}
			}
		}`))
	}))

	quote, err := client.ReadPrice(context.Background(), testWalletAddress, "alice", 31536000)
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", quote.Total().String())
}

func TestReadPriceRejectsShortOutput(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"outputs":{"arg_0":{"value":[{"value":"10"}]}}}`))
	}))

	_, err := client.ReadPrice(context.Background(), testWalletAddress, "alice", 31536000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 2")
}

func TestReadExpiryHandlesStringNumberAndAbsent(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expiresAt int64
	}{
		{name: "string value", body: `{"outputs":{"expiry":{"value":"1800000000"}}}`, expiresAt: 1800000000},
		{name: "numeric value", body: `{"outputs":{"expiry":{"value":1800000000}}}`, expiresAt: 1800000000},
		{name: "zero", body: `{"outputs":{"expiry":{"value":"0"}}}`, expiresAt: 0},
		{name: "absent", body: `{"outputs":{}}`, expiresAt: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, testTrailPrefix+"nodes/node-expiry/read", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))

			expiry, err := client.ReadExpiry(context.Background(), testWalletAddress, "alice")
			require.NoError(t, err)
			assert.Equal(t, tt.expiresAt, expiry.ExpiresAt)
		})
	}
}

func TestEvaluateStepCarriesExecutionRefAndDecodesPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, testTrailPrefix+"steps/1/evaluations", r.URL.Path)

		var request map[string]json.RawMessage
		decodeBody(t, r, &request)
		assert.JSONEq(t, `{"type":"manual","executionId":"exec-1"}`, string(request["execution"]))

		_, _ = w.Write([]byte(`{
			"nodeId": "node-register",
			"contractAddress": "0x00000000000000000000000000000000000000cc",
			"callData": "0xdeadbeef",
			"payableAmount": "1500000000000000000",
			"gasEstimate": 210000
		}`))
	}))

	evaluation, err := client.EvaluateStep(context.Background(), testWalletAddress, "alice", 31536000, domain.ManualRef("exec-1"))
	require.NoError(t, err)
	assert.Equal(t, "node-register", evaluation.NodeID)
	assert.Equal(t, "0x00000000000000000000000000000000000000cc", evaluation.To)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, evaluation.CallData)
	assert.Equal(t, "1500000000000000000", evaluation.Value.String())
	assert.Equal(t, uint64(210000), evaluation.GasEstimate)
}

func TestEvaluateStepDefaultsPayableAmountToZero(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"nodeId":"n","contractAddress":"0xcc","callData":"0x"}`))
	}))

	evaluation, err := client.EvaluateStep(context.Background(), testWalletAddress, "alice", 31536000, domain.LatestRef())
	require.NoError(t, err)
	assert.Equal(t, "0", evaluation.Value.String())
	assert.Empty(t, evaluation.CallData)
}

func TestEvaluateStepRejectsInvalidRef(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	}))

	_, err := client.EvaluateStep(context.Background(), testWalletAddress, "alice", 31536000, domain.ExecutionRef{})
	require.Error(t, err)
}

func TestReportExecutionPostsTransactionHash(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, testTrailPrefix+"executions", r.URL.Path)

		var request map[string]json.RawMessage
		decodeBody(t, r, &request)
		assert.JSONEq(t, `"node-register"`, string(request["nodeId"]))
		assert.JSONEq(t, `"0xf00d"`, string(request["transactionHash"]))
		assert.JSONEq(t, `{"type":"manual","executionId":"exec-1"}`, string(request["execution"]))

		w.WriteHeader(http.StatusCreated)
	}))

	err := client.ReportExecution(context.Background(), testWalletAddress, "node-register", "0xf00d", domain.ManualRef("exec-1"))
	require.NoError(t, err)
}

func TestPostJSONSurfacesErrorStatusWithBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "trail version not found", http.StatusNotFound)
	}))

	_, err := client.ListExecutions(context.Background(), testWalletAddress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "trail version not found")
}
