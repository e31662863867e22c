package settings

import (
	"context"
	"testing"
)

func TestIntoAndFromContext(t *testing.T) {
	run := NewCliParams()
	run.Path = "data.csv"

	ctx := IntoContext(context.Background(), run)
	got, ok := FromContext(ctx)
	if !ok {
		t.Fatalf("expected settings in context")
	}
	if got.Path != "data.csv" {
		t.Errorf("expected path to round-trip, got %q", got.Path)
	}
}

func TestFromContextMissing(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("expected no settings in empty context")
	}
}
