package books

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestCache_NilClientDisables(t *testing.T) {
	c := NewCache(nil)
	if _, ok := c.Get(context.Background(), "stats"); ok {
		t.Error("disabled cache reported a hit")
	}
	// must not panic
	c.Set(context.Background(), "stats", []byte(`{}`))
}

func TestCache_EnvKillSwitch(t *testing.T) {
	t.Setenv("BOOKS_DISABLE_CACHE", "1")
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()

	c := NewCache(rdb)
	if _, ok := c.Get(context.Background(), "filters"); ok {
		t.Error("kill switch ignored")
	}
}

func TestBumpVersion_NilClientIsNoop(t *testing.T) {
	if err := BumpVersion(context.Background(), nil); err != nil {
		t.Fatalf("err = %v", err)
	}
}
