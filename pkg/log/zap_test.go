package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"challenge-admin/pkg/log"
)

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := log.NewFromZap(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-1")
	l.Warnf(ctx, "validation failed: %v", []string{"email"})
	l.Info(context.Background(), "no id")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-1" {
		t.Errorf("expected request_id req-1, got %v", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("expected no request_id on second entry")
	}
	if entries[0].Message != "validation failed: [email]" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
}

func TestRequestIDFromNilContext(t *testing.T) {
	var ctx context.Context
	if got := log.RequestIDFrom(ctx); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}
