package trails

import (
	"encoding/json"
	"time"

	"github.com/trailkit/regname/internal/domain"
)

// Wire shapes for the trails API. Amounts travel as decimal strings; user
// inputs are per-field {value} objects.

type userInput struct {
	Value any `json:"value"`
}

type queryExecutionsRequest struct {
	WalletAddresses []string `json:"walletAddresses"`
}

type queryExecutionsResponse struct {
	WalletExecutions []walletExecutionsSchema `json:"walletExecutions"`
}

type walletExecutionsSchema struct {
	WalletAddress string            `json:"walletAddress"`
	Executions    []executionSchema `json:"executions"`
}

type executionSchema struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Steps     []stepSchema `json:"steps"`
}

type stepSchema struct {
	Index          int       `json:"index"`
	NodeID         string    `json:"nodeId,omitempty"`
	TxHash         string    `json:"txHash"`
	BlockNumber    uint64    `json:"blockNumber,omitempty"`
	BlockTimestamp int64     `json:"blockTimestamp,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (s executionSchema) toDomain() domain.Execution {
	execution := domain.Execution{
		ID:        domain.ExecutionID(s.ID),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Steps:     make([]domain.Step, 0, len(s.Steps)),
	}
	for _, step := range s.Steps {
		execution.Steps = append(execution.Steps, domain.Step{
			Index:          step.Index,
			NodeID:         step.NodeID,
			TxHash:         step.TxHash,
			BlockNumber:    step.BlockNumber,
			BlockTimestamp: step.BlockTimestamp,
			CreatedAt:      step.CreatedAt,
		})
	}

	return execution
}

type nodeReadRequest struct {
	WalletAddress string               `json:"walletAddress"`
	Execution     domain.ExecutionRef  `json:"execution"`
	UserInputs    map[string]userInput `json:"userInputs"`
}

type readPriceResponse struct {
	Outputs struct {
		Arg0 struct {
			Value []struct {
				Value string `json:"value"`
			} `json:"value"`
		} `json:"arg_0"`
	} `json:"outputs"`
}

type readExpiryResponse struct {
	Outputs struct {
		Expiry struct {
			Value json.Number `json:"value"`
		} `json:"expiry"`
	} `json:"outputs"`
}

type evaluateStepRequest struct {
	WalletAddress string               `json:"walletAddress"`
	Execution     domain.ExecutionRef  `json:"execution"`
	UserInputs    map[string]userInput `json:"userInputs"`
}

type evaluateStepResponse struct {
	NodeID          string `json:"nodeId"`
	ContractAddress string `json:"contractAddress"`
	CallData        string `json:"callData"`
	PayableAmount   string `json:"payableAmount,omitempty"`
	GasEstimate     uint64 `json:"gasEstimate,omitempty"`
}

type reportExecutionRequest struct {
	NodeID          string              `json:"nodeId"`
	TransactionHash string              `json:"transactionHash"`
	WalletAddress   string              `json:"walletAddress"`
	Execution       domain.ExecutionRef `json:"execution"`
}
