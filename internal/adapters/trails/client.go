package trails

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trailkit/regname/internal/domain"
	"github.com/trailkit/regname/internal/ports"
)

// Registration only ever drives the first on-chain step of the trail.
const registrationStepIndex = 1

const maxResponseBytes = 1 << 20

// Client talks to the trails service over HTTP JSON. One instance serves as
// execution directory, pricing reader, step evaluator, and reporter.
type Client struct {
	baseURL       string
	trailID       string
	versionID     string
	pricingNodeID string
	expiryNodeID  string
	httpClient    *http.Client
}

var (
	_ ports.ExecutionDirectory = (*Client)(nil)
	_ ports.PricingReader      = (*Client)(nil)
	_ ports.StepEvaluator      = (*Client)(nil)
	_ ports.ExecutionReporter  = (*Client)(nil)
)

type ClientConfig struct {
	BaseURL       string
	TrailID       string
	VersionID     string
	PricingNodeID string
	ExpiryNodeID  string
	HTTPClient    *http.Client
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("trails base URL is empty")
	}
	if cfg.TrailID == "" || cfg.VersionID == "" {
		return nil, fmt.Errorf("trail id and version id are required")
	}
	if cfg.PricingNodeID == "" || cfg.ExpiryNodeID == "" {
		return nil, fmt.Errorf("pricing node id and expiry node id are required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		trailID:       cfg.TrailID,
		versionID:     cfg.VersionID,
		pricingNodeID: cfg.PricingNodeID,
		expiryNodeID:  cfg.ExpiryNodeID,
		httpClient:    httpClient,
	}, nil
}

func (c *Client) ListExecutions(ctx context.Context, walletAddress string) ([]domain.Execution, error) {
	request := queryExecutionsRequest{WalletAddresses: []string{walletAddress}}

	var response queryExecutionsResponse
	if err := c.postJSON(ctx, c.versionPath("executions/query"), request, &response); err != nil {
		return nil, fmt.Errorf("query executions: %w", err)
	}

	var executions []domain.Execution
	for _, wallet := range response.WalletExecutions {
		if !strings.EqualFold(wallet.WalletAddress, walletAddress) {
			continue
		}
		for _, execution := range wallet.Executions {
			executions = append(executions, execution.toDomain())
		}
	}

	return executions, nil
}

func (c *Client) ReadPrice(ctx context.Context, walletAddress, name string, durationSeconds int64) (domain.PriceQuote, error) {
	request := nodeReadRequest{
		WalletAddress: walletAddress,
		Execution:     domain.LatestRef(),
		UserInputs: map[string]userInput{
			"name":     {Value: name},
			"duration": {Value: durationSeconds},
		},
	}

	var response readPriceResponse
	path := c.versionPath("nodes/" + c.pricingNodeID + "/read")
	if err := c.postJSON(ctx, path, request, &response); err != nil {
		return domain.PriceQuote{}, fmt.Errorf("read price node: %w", err)
	}

	values := response.Outputs.Arg0.Value
	if len(values) < 2 {
		return domain.PriceQuote{}, fmt.Errorf("price node returned %d amounts, want 2", len(values))
	}

	quote, err := domain.NewPriceQuote(values[0].Value, values[1].Value)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("decode price node output: %w", err)
	}

	return quote, nil
}

func (c *Client) ReadExpiry(ctx context.Context, walletAddress, name string) (domain.ExpiryInfo, error) {
	request := nodeReadRequest{
		WalletAddress: walletAddress,
		Execution:     domain.LatestRef(),
		UserInputs: map[string]userInput{
			"name": {Value: name},
		},
	}

	var response readExpiryResponse
	path := c.versionPath("nodes/" + c.expiryNodeID + "/read")
	if err := c.postJSON(ctx, path, request, &response); err != nil {
		return domain.ExpiryInfo{}, fmt.Errorf("read expiry node: %w", err)
	}

	raw := response.Outputs.Expiry.Value.String()
	if raw == "" {
		return domain.ExpiryInfo{}, nil
	}
	expiresAt, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return domain.ExpiryInfo{}, fmt.Errorf("decode expiry value %q", raw)
	}

	return domain.ExpiryInfo{ExpiresAt: expiresAt.Int64()}, nil
}

func (c *Client) EvaluateStep(ctx context.Context, walletAddress, name string, durationSeconds int64, ref domain.ExecutionRef) (domain.StepEvaluation, error) {
	if !ref.Valid() {
		return domain.StepEvaluation{}, fmt.Errorf("evaluate step: invalid execution ref")
	}

	request := evaluateStepRequest{
		WalletAddress: walletAddress,
		Execution:     ref,
		UserInputs: map[string]userInput{
			"name":     {Value: name},
			"duration": {Value: durationSeconds},
		},
	}

	var response evaluateStepResponse
	path := c.versionPath(fmt.Sprintf("steps/%d/evaluations", registrationStepIndex))
	if err := c.postJSON(ctx, path, request, &response); err != nil {
		return domain.StepEvaluation{}, fmt.Errorf("evaluate step %d: %w", registrationStepIndex, err)
	}

	callData, err := hexutil.Decode(response.CallData)
	if err != nil {
		return domain.StepEvaluation{}, fmt.Errorf("decode call data %q: %w", response.CallData, err)
	}

	value := new(big.Int)
	if response.PayableAmount != "" {
		value, err = parseAmount(response.PayableAmount)
		if err != nil {
			return domain.StepEvaluation{}, fmt.Errorf("decode payable amount: %w", err)
		}
	}

	return domain.StepEvaluation{
		NodeID:      response.NodeID,
		To:          response.ContractAddress,
		CallData:    callData,
		Value:       value,
		GasEstimate: response.GasEstimate,
	}, nil
}

func (c *Client) ReportExecution(ctx context.Context, walletAddress, nodeID, txHash string, ref domain.ExecutionRef) error {
	if !ref.Valid() {
		return fmt.Errorf("report execution: invalid execution ref")
	}

	request := reportExecutionRequest{
		NodeID:          nodeID,
		TransactionHash: txHash,
		WalletAddress:   walletAddress,
		Execution:       ref,
	}

	if err := c.postJSON(ctx, c.versionPath("executions"), request, nil); err != nil {
		return fmt.Errorf("report execution: %w", err)
	}

	return nil
}

func (c *Client) versionPath(suffix string) string {
	return fmt.Sprintf("%s/trails/%s/versions/%s/%s", c.baseURL, c.trailID, c.versionID, suffix)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, requestBody, responseBody any) error {
	encoded, err := json.Marshal(requestBody)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	if responseBody == nil {
		return nil
	}
	if err := json.Unmarshal(body, responseBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func parseAmount(raw string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", raw)
	}

	return amount, nil
}
