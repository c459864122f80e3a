package whatsapp

import (
	"context"
	"testing"
)

func TestFormatAuthHeader_WrapsRawKeyAsBasic(t *testing.T) {
	got := formatAuthHeader("secret-key")
	want := "Basic c2VjcmV0LWtleQ=="
	if got != want {
		t.Fatalf("formatAuthHeader() = %q, want %q", got, want)
	}
}

func TestFormatAuthHeader_LeavesExistingBasicHeaderAlone(t *testing.T) {
	got := formatAuthHeader("Basic already-encoded")
	if got != "Basic already-encoded" {
		t.Fatalf("formatAuthHeader() = %q, want unchanged input", got)
	}
}

func TestIsMobileCapable_FalseWhenClassifierUnavailable(t *testing.T) {
	// The shared classifier engine (platform/phone) is wired at process
	// startup; in a unit test it is never initialized, so every input
	// classifies as unknown and isMobileCapable must fail closed.
	if isMobileCapable("+31612345678") {
		t.Fatal("expected isMobileCapable to be false without a wired classifier")
	}
}

func TestEnqueue_NilClientIsANoOp(t *testing.T) {
	var c *Client
	if err := c.Enqueue(context.Background(), "+31612345678", "hello"); err != nil {
		t.Fatalf("Enqueue() on nil client error = %v, want nil", err)
	}
}
