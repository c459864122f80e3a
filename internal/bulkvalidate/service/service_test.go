package service

import (
	"testing"

	"github.com/headuck/gophonelite/internal/bulkvalidate/repository"
)

func strPtr(s string) *string { return &s }

func TestSummarize_CountsByOutcome(t *testing.T) {
	results := []repository.Result{
		{RawInput: "+31612345678", Valid: true},
		{RawInput: "+31600000000", Valid: false},
		{RawInput: "not a number", ErrorKind: strPtr("NOT_A_NUMBER")},
		{RawInput: "+31688888888", Valid: true},
	}

	summary := Summarize(results)
	if summary.Total != 4 {
		t.Fatalf("Total = %d, want 4", summary.Total)
	}
	if summary.Valid != 2 {
		t.Fatalf("Valid = %d, want 2", summary.Valid)
	}
	if summary.Invalid != 1 {
		t.Fatalf("Invalid = %d, want 1", summary.Invalid)
	}
	if summary.Errored != 1 {
		t.Fatalf("Errored = %d, want 1", summary.Errored)
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	summary := Summarize(nil)
	if summary != (Summary{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero value", summary)
	}
}

func TestNew_ClampsNonPositiveConcurrencyToOne(t *testing.T) {
	svc := New(nil, "NL", 0)
	if svc.concurrency != 1 {
		t.Fatalf("concurrency = %d, want 1", svc.concurrency)
	}
	svc = New(nil, "NL", -5)
	if svc.concurrency != 1 {
		t.Fatalf("concurrency = %d, want 1", svc.concurrency)
	}
}
