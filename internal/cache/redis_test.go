package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCacheFromClient(client)
}

type testEntity struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestRedisCache_SetGet(t *testing.T) {
	c := setupTestRedis(t)
	defer c.Close()

	want := testEntity{ID: 1, Name: "P"}
	if err := c.Set("project:1", want, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got testEntity
	if err := c.Get("project:1", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestRedisCache_Miss(t *testing.T) {
	c := setupTestRedis(t)
	defer c.Close()

	var got testEntity
	if err := c.Get("project:404", &got); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}
}

func TestRedisCache_DeletePattern(t *testing.T) {
	c := setupTestRedis(t)
	defer c.Close()

	c.Set("project:1", testEntity{ID: 1}, time.Minute)
	c.Set("project:2", testEntity{ID: 2}, time.Minute)
	c.Set("task:1", testEntity{ID: 1}, time.Minute)

	if err := c.DeletePattern("project:*"); err != nil {
		t.Fatalf("DeletePattern failed: %v", err)
	}

	var got testEntity
	if err := c.Get("project:1", &got); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected project:1 evicted, got %v", err)
	}
	if err := c.Get("task:1", &got); err != nil {
		t.Errorf("task:1 should survive, got %v", err)
	}
}

func TestRedisCache_Exists(t *testing.T) {
	c := setupTestRedis(t)
	defer c.Close()

	c.Set("task:1", testEntity{ID: 1}, time.Minute)

	exists, err := c.Exists("task:1")
	if err != nil || !exists {
		t.Errorf("expected task:1 to exist, got %v %v", exists, err)
	}

	exists, err = c.Exists("task:2")
	if err != nil || exists {
		t.Errorf("expected task:2 to be absent, got %v %v", exists, err)
	}
}
