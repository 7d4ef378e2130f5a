// Package main contains the Lambda warmup handler for preventing cold starts.
// Scheduled events trigger it periodically to keep instances warm.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/pricofy/pirate-translator/internal/router"
)

const (
	// WarmupSource identifies warmup events.
	WarmupSource = "warmup"

	// WarmupDelay ensures instances overlap to create true concurrency.
	WarmupDelay = 75 * time.Millisecond

	// MaxWarmupConcurrency caps self-invocations per warmup event.
	MaxWarmupConcurrency = 50

	// primeText runs through every stage of the pipeline once per dialect.
	primeText = "hello friend, i love you"
)

// WarmupEvent represents the scheduled event payload for warmup.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse is the response returned by warmup operations.
type WarmupResponse struct {
	Status          string   `json:"status"`
	InstancesWarmed int      `json:"instancesWarmed"`
	Dialects        []string `json:"dialects"`
}

type invoker interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

type warmer struct {
	functionName string
	router       *router.Router
	logger       *slog.Logger
	delay        time.Duration
	newClient    func(ctx context.Context) (invoker, error)
}

func newWarmer(functionName string, r *router.Router, logger *slog.Logger) *warmer {
	return &warmer{
		functionName: functionName,
		router:       r,
		logger:       logger,
		delay:        WarmupDelay,
		newClient:    newLambdaClient,
	}
}

func newLambdaClient(ctx context.Context) (invoker, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return lambdasdk.NewFromConfig(cfg), nil
}

// IsWarmupEvent checks if the event is a warmup event.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var eventMap map[string]interface{}
	if err := json.Unmarshal(event, &eventMap); err != nil {
		return nil, false
	}

	source, ok := eventMap["source"].(string)
	if !ok || source != WarmupSource {
		return nil, false
	}

	warmup := &WarmupEvent{Source: source}

	// Parse concurrency (optional, defaults to 0, clamped to [0, MaxWarmupConcurrency])
	if concurrency, ok := eventMap["concurrency"].(float64); ok {
		switch {
		case concurrency > MaxWarmupConcurrency:
			warmup.Concurrency = MaxWarmupConcurrency
		case concurrency > 0:
			warmup.Concurrency = int(concurrency)
		}
	}

	return warmup, true
}

// Handle primes every translator and optionally self-invokes to keep
// additional instances warm. Warmup translations are not recorded in history.
func (w *warmer) Handle(ctx context.Context, warmup *WarmupEvent) (interface{}, error) {
	dialects := w.router.SupportedDialects()
	for _, name := range dialects {
		t, err := w.router.Translator(name)
		if err != nil {
			continue
		}
		t.Preview(primeText)
	}

	instancesWarmed := 1 // This instance counts as 1

	if warmup.Concurrency > 0 {
		if err := w.selfInvoke(ctx, warmup.Concurrency); err != nil {
			w.logger.WarnContext(ctx, "warmup self-invoke failed", "concurrency", warmup.Concurrency, "error", err)
		} else {
			instancesWarmed += warmup.Concurrency
		}
	}

	// Brief delay to ensure instances overlap
	time.Sleep(w.delay)

	w.logger.InfoContext(ctx, "warmed", "instances", instancesWarmed)
	return map[string]interface{}{
		"statusCode": 200,
		"body": WarmupResponse{
			Status:          "warm",
			InstancesWarmed: instancesWarmed,
			Dialects:        dialects,
		},
	}, nil
}

// selfInvoke invokes this Lambda function count times asynchronously
// to create additional warm instances.
func (w *warmer) selfInvoke(ctx context.Context, count int) error {
	if w.functionName == "" {
		return fmt.Errorf("function name is not set")
	}

	client, err := w.newClient(ctx)
	if err != nil {
		return err
	}

	// Payload for child invocations (concurrency=0 to prevent infinite loop)
	payload, err := json.Marshal(WarmupEvent{
		Source:      WarmupSource,
		Concurrency: 0,
	})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	var invokeErr error
	var errMu sync.Mutex

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(w.functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})

			if err != nil {
				errMu.Lock()
				if invokeErr == nil {
					invokeErr = err
				}
				errMu.Unlock()
			}
		}()
	}

	wg.Wait()
	return invokeErr
}
