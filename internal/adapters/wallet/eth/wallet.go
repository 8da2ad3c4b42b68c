package eth

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trailkit/regname/internal/domain"
	"github.com/trailkit/regname/internal/ports"
)

// Wallet signs and broadcasts evaluated step payloads through a JSON-RPC
// node. Failures from the node are surfaced verbatim; there is no retry and
// no classification.
type Wallet struct {
	client  *ethclient.Client
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
}

var _ ports.Wallet = (*Wallet)(nil)

// NewWallet parses the signing key, dials the RPC endpoint, and pins the
// chain id used for signing.
func NewWallet(ctx context.Context, rpcURL, privateKeyHex string) (*Wallet, error) {
	key, err := ParseKey(privateKeyHex)
	if err != nil {
		return nil, err
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc endpoint: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("fetch chain id: %w", err)
	}

	return &Wallet{
		client:  client,
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
	}, nil
}

// ParseKey decodes a hex-encoded secp256k1 private key, with or without a
// 0x prefix.
func ParseKey(privateKeyHex string) (*ecdsa.PrivateKey, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	if trimmed == "" {
		return nil, fmt.Errorf("private key is empty")
	}

	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return key, nil
}

// AddressFor returns the checksummed address controlled by a key.
func AddressFor(key *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func (w *Wallet) Address() string {
	return w.address.Hex()
}

func (w *Wallet) Close() {
	w.client.Close()
}

// Submit signs the payload and hands it to the node. Once this returns a
// hash the transaction exists in the pending pool regardless of what the
// caller does next.
func (w *Wallet) Submit(ctx context.Context, evaluation domain.StepEvaluation) (string, error) {
	if !common.IsHexAddress(evaluation.To) {
		return "", fmt.Errorf("invalid destination address %q", evaluation.To)
	}
	to := common.HexToAddress(evaluation.To)

	value := evaluation.Value
	if value == nil {
		value = new(big.Int)
	}

	nonce, err := w.client.PendingNonceAt(ctx, w.address)
	if err != nil {
		return "", fmt.Errorf("fetch pending nonce: %w", err)
	}

	gasPrice, err := w.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}

	gasLimit := evaluation.GasEstimate
	if gasLimit == 0 {
		gasLimit, err = w.client.EstimateGas(ctx, ethereum.CallMsg{
			From:  w.address,
			To:    &to,
			Value: value,
			Data:  evaluation.CallData,
		})
		if err != nil {
			return "", fmt.Errorf("estimate gas: %w", err)
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     evaluation.CallData,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(w.chainID), w.key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := w.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("broadcast transaction: %w", err)
	}

	return signed.Hash().Hex(), nil
}
