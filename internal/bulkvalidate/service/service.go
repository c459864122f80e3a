// Package service implements the bulk-validate batch job's business logic:
// classify a stream of raw phone number strings against the engine. It is
// deliberately independent of the HTTP-facing phonenumberapi service, since
// a batch job's error handling (record and continue) differs from a
// request handler's (fail the request).
package service

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/headuck/gophonelite/internal/bulkvalidate/repository"
	"github.com/headuck/gophonelite/phonenumber"
)

// Summary tallies the outcome of a bulk validation run.
type Summary struct {
	Total   int
	Valid   int
	Invalid int
	Errored int
}

// Service classifies phone numbers with an already-initialized engine.
type Service struct {
	engine        *phonenumber.Util
	defaultRegion string
	concurrency   int
}

// New builds a Service. concurrency bounds how many rows are classified in
// parallel; values below 1 fall back to a sequential run.
func New(engine *phonenumber.Util, defaultRegion string, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{engine: engine, defaultRegion: defaultRegion, concurrency: concurrency}
}

// Classify classifies every entry in numbers concurrently and returns one
// result row per entry, in input order.
func (s *Service) Classify(ctx context.Context, numbers []string) ([]repository.Result, error) {
	results := make([]repository.Result, len(numbers))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)

	for i, raw := range numbers {
		i, raw := i, raw
		group.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = s.classify(raw)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) classify(raw string) repository.Result {
	pn, err := s.engine.Parse(raw, s.defaultRegion)
	if err != nil {
		kind := "UNKNOWN"
		if pnErr, ok := err.(*phonenumber.Error); ok {
			kind = pnErr.Kind.String()
		}
		return repository.Result{RawInput: raw, Valid: false, ErrorKind: &kind}
	}

	e164 := formatE164(pn)
	region := s.engine.GetRegionCodeForNumber(pn)
	numberType := s.engine.GetNumberType(pn).String()
	valid := s.engine.IsValidNumber(pn)

	return repository.Result{
		RawInput:   raw,
		E164:       &e164,
		Region:     &region,
		NumberType: &numberType,
		Valid:      valid,
	}
}

// Summarize aggregates classified results into a report summary.
func Summarize(results []repository.Result) Summary {
	var summary Summary
	for _, result := range results {
		summary.Total++
		switch {
		case result.ErrorKind != nil:
			summary.Errored++
		case result.Valid:
			summary.Valid++
		default:
			summary.Invalid++
		}
	}
	return summary
}

func formatE164(pn *phonenumber.PhoneNumber) string {
	return "+" + strconv.Itoa(pn.CountryCode) + phonenumber.GetNationalSignificantNumber(pn)
}
