package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/trailkit/regname/internal/domain"
	"github.com/trailkit/regname/internal/ports"
)

// State names the phase a registration attempt is in. The attempt is
// terminal on the first failure or on an explicit stop.
type State string

const (
	StateCheckingAvailability State = "checking_availability"
	StateConfirming           State = "confirming"
	StateResolvingExecution   State = "resolving_execution"
	StateFetchingPayload      State = "fetching_payload"
	StateSubmitting           State = "submitting"
	StateReporting            State = "reporting"
	StateDone                 State = "done"
	StateAlreadyRegistered    State = "already_registered"
	StateCancelled            State = "cancelled"
)

// Outcome is the terminal result of a registration attempt.
// AlreadyRegistered and Cancelled are benign outcomes, not failures.
type Outcome struct {
	State      State
	Quote      domain.PriceQuote
	Expiry     domain.ExpiryInfo
	Ref        domain.ExecutionRef
	TxHash     string
	FinishedAt time.Time
}

// ReportError marks a report call that failed after the transaction was
// already broadcast. The hash is carried so an operator can reconcile the
// execution with on-chain reality out-of-band.
type ReportError struct {
	TxHash string
	Err    error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report execution for broadcast transaction %s: %v", e.TxHash, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// RegistrationService sequences the whole registration flow:
// price/availability reads, the confirmation gate, execution resolution,
// step evaluation, wallet submission, and the final report.
type RegistrationService struct {
	pricing   ports.PricingReader
	resolver  *ExecutionResolver
	evaluator ports.StepEvaluator
	reporter  ports.ExecutionReporter
	wallet    ports.Wallet
	confirmer ports.Confirmer
	clock     ports.Clock
	logger    zerolog.Logger
}

func NewRegistrationService(
	pricing ports.PricingReader,
	resolver *ExecutionResolver,
	evaluator ports.StepEvaluator,
	reporter ports.ExecutionReporter,
	wallet ports.Wallet,
	confirmer ports.Confirmer,
	clock ports.Clock,
	logger zerolog.Logger,
) *RegistrationService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &RegistrationService{
		pricing:   pricing,
		resolver:  resolver,
		evaluator: evaluator,
		reporter:  reporter,
		wallet:    wallet,
		confirmer: confirmer,
		clock:     clock,
		logger:    logger,
	}
}

// CheckAvailability issues the price and expiry reads concurrently. Both
// must finish before the result is usable; either failure aborts.
func (s *RegistrationService) CheckAvailability(ctx context.Context, name string, durationSeconds int64) (domain.PriceQuote, domain.ExpiryInfo, error) {
	var (
		quote     domain.PriceQuote
		expiry    domain.ExpiryInfo
		priceErr  error
		expiryErr error
	)

	walletAddress := s.wallet.Address()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		quote, priceErr = s.pricing.ReadPrice(ctx, walletAddress, name, durationSeconds)
	}()
	go func() {
		defer wg.Done()
		expiry, expiryErr = s.pricing.ReadExpiry(ctx, walletAddress, name)
	}()
	wg.Wait()

	if priceErr != nil {
		return domain.PriceQuote{}, domain.ExpiryInfo{}, fmt.Errorf("read price: %w", priceErr)
	}
	if expiryErr != nil {
		return domain.PriceQuote{}, domain.ExpiryInfo{}, fmt.Errorf("read expiry: %w", expiryErr)
	}

	return quote, expiry, nil
}

// Register runs the attempt to its terminal state. The execution reference
// resolved before evaluation flows unchanged into the report call.
func (s *RegistrationService) Register(ctx context.Context, req domain.RegistrationRequest) (Outcome, error) {
	outcome := Outcome{State: StateCheckingAvailability}

	quote, expiry, err := s.CheckAvailability(ctx, req.Name, req.DurationSeconds())
	if err != nil {
		return s.finish(outcome), err
	}
	outcome.Quote = quote
	outcome.Expiry = expiry

	if expiry.Registered() {
		outcome.State = StateAlreadyRegistered
		return s.finish(outcome), nil
	}

	outcome.State = StateConfirming
	confirmed, err := s.confirmer.ConfirmRegistration(ctx, req, quote)
	if err != nil {
		return s.finish(outcome), fmt.Errorf("confirm registration: %w", err)
	}
	if !confirmed {
		outcome.State = StateCancelled
		return s.finish(outcome), nil
	}

	outcome.State = StateResolvingExecution
	ref, err := s.resolver.Resolve(ctx, s.wallet.Address())
	if err != nil {
		return s.finish(outcome), fmt.Errorf("resolve execution: %w", err)
	}
	outcome.Ref = ref

	outcome.State = StateFetchingPayload
	evaluation, err := s.evaluator.EvaluateStep(ctx, s.wallet.Address(), req.Name, req.DurationSeconds(), ref)
	if err != nil {
		return s.finish(outcome), fmt.Errorf("evaluate step: %w", err)
	}

	outcome.State = StateSubmitting
	txHash, err := s.wallet.Submit(ctx, evaluation)
	if err != nil {
		return s.finish(outcome), fmt.Errorf("submit transaction: %w", err)
	}
	outcome.TxHash = txHash

	// Log before reporting: if the report fails, this hash is the only
	// handle an operator has to reconcile the execution manually.
	s.logger.Info().
		Str("name", req.Name).
		Str("execution", ref.String()).
		Str("tx", txHash).
		Msg("transaction broadcast")

	outcome.State = StateReporting
	if err := s.reporter.ReportExecution(ctx, s.wallet.Address(), evaluation.NodeID, txHash, ref); err != nil {
		return s.finish(outcome), &ReportError{TxHash: txHash, Err: err}
	}

	outcome.State = StateDone
	return s.finish(outcome), nil
}

func (s *RegistrationService) finish(outcome Outcome) Outcome {
	outcome.FinishedAt = s.clock.Now()
	return outcome
}
