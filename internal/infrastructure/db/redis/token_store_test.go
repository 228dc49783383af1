package redis

import (
	"context"
	"testing"
	"time"
)

func TestOpen_UnreachableServer(t *testing.T) {
	store, err := Open(context.Background(), Config{
		Addr:        "127.0.0.1:1",
		Key:         "token",
		DialTimeout: 200 * time.Millisecond,
	})
	if err == nil {
		_ = store.Close()
		t.Fatalf("expected an error for an unreachable server")
	}
	if store != nil {
		t.Fatalf("no store expected on failure")
	}
}
