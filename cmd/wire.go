package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	configadapter "github.com/trailkit/regname/internal/adapters/config"
	quoteadapter "github.com/trailkit/regname/internal/adapters/render/quote"
	chainstore "github.com/trailkit/regname/internal/adapters/secrets/chain"
	"github.com/trailkit/regname/internal/adapters/trails"
	ethwallet "github.com/trailkit/regname/internal/adapters/wallet/eth"
	"github.com/trailkit/regname/internal/application"
	"github.com/trailkit/regname/internal/observability"
	"github.com/trailkit/regname/internal/ports"
)

// walletKeySecret is the secret store key holding the wallet private key,
// overridable through the REGNAME_WALLET_KEY environment variable.
const walletKeySecret = "wallet_key"

type app struct {
	verbose       bool
	httpClient    *http.Client
	quoteRenderer func(quoteadapter.Summary, quoteadapter.RenderOptions) (string, error)
	now           func() time.Time
}

func newApp() *app {
	return &app{
		httpClient:    http.DefaultClient,
		quoteRenderer: quoteadapter.Render,
		now:           time.Now,
	}
}

// services holds the fully wired dependency graph. Wiring happens per
// command invocation rather than at root construction so `version` and
// `config init` keep working before a config file exists.
type services struct {
	client  *trails.Client
	wallet  *ethwallet.Wallet
	service *application.RegistrationService
}

func (s *services) Close() {
	if s.wallet != nil {
		s.wallet.Close()
	}
}

func (a *app) wireServices(ctx context.Context, errOut io.Writer, confirmer ports.Confirmer) (*services, error) {
	cfg, err := configadapter.Load(nil)
	if err != nil {
		return nil, err
	}

	client, err := trails.NewClient(trails.ClientConfig{
		BaseURL:       cfg.TrailsBaseURL,
		TrailID:       cfg.TrailID,
		VersionID:     cfg.VersionID,
		PricingNodeID: cfg.PricingNodeID,
		ExpiryNodeID:  cfg.ExpiryNodeID,
		HTTPClient:    a.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("wire trails client: %w", err)
	}

	secretStore, err := chainstore.NewEnvFirstWithFileFallback(configadapter.EnvPrefix, cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	keyHex, err := secretStore.Get(ctx, walletKeySecret)
	if err != nil {
		return nil, fmt.Errorf("load wallet key secret %q: %w", walletKeySecret, err)
	}
	if strings.TrimSpace(keyHex) == "" {
		return nil, fmt.Errorf("wallet key secret %q is empty", walletKeySecret)
	}

	wallet, err := ethwallet.NewWallet(ctx, cfg.RPCURL, keyHex)
	if err != nil {
		return nil, fmt.Errorf("wire wallet: %w", err)
	}

	logger := observability.NewLogger(errOut, a.verbose)
	resolver := application.NewExecutionResolver(client)

	return &services{
		client: client,
		wallet: wallet,
		service: application.NewRegistrationService(
			client,
			resolver,
			client,
			client,
			wallet,
			confirmer,
			ports.SystemClock{},
			logger,
		),
	}, nil
}
