package cache

import (
	"testing"
	"time"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := New(true)
	etag := c.Set("k", []byte(`{"a":1}`), time.Minute)

	data, gotETag, ok := c.Get("k")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if string(data) != `{"a":1}` || gotETag != etag {
		t.Fatalf("got %s / %s, want original data and etag %s", data, gotETag, etag)
	}
}

func TestGetMissesExpiredEntries(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), -time.Second)

	if _, _, ok := c.Get("k"); ok {
		t.Fatal("expired entry must miss")
	}
}

func TestDisabledCacheNeverStores(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Minute)
	if etag == "" {
		t.Fatal("Set should still compute an etag when disabled")
	}
	if _, _, ok := c.Get("k"); ok {
		t.Fatal("disabled cache must never hit")
	}
}

func TestClearDropsAllEntries(t *testing.T) {
	c := New(true)
	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)
	c.Clear()

	if _, _, ok := c.Get("a"); ok {
		t.Fatal("entry survived Clear")
	}
	if _, _, ok := c.Get("b"); ok {
		t.Fatal("entry survived Clear")
	}
}

func TestComputeETagIsStablePerPayload(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	if a != ComputeETag([]byte("payload")) {
		t.Fatal("same payload must produce the same etag")
	}
	if a == ComputeETag([]byte("other")) {
		t.Fatal("different payloads must produce different etags")
	}
	if a[:3] != `W/"` {
		t.Fatalf("etag %q should be weak", a)
	}
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))
	cases := []struct {
		ifNoneMatch string
		want        bool
	}{
		{"", false},
		{"*", true},
		{etag, true},
		{`W/"deadbeef"`, false},
	}
	for _, tc := range cases {
		if got := CheckETagMatch(tc.ifNoneMatch, etag); got != tc.want {
			t.Fatalf("CheckETagMatch(%q) = %v, want %v", tc.ifNoneMatch, got, tc.want)
		}
	}
}

func TestEvictRemovesOnlyExpired(t *testing.T) {
	c := New(true)
	c.Set("fresh", []byte("1"), time.Minute)
	c.Set("stale", []byte("2"), -time.Second)
	c.evict()

	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.entries["stale"]; ok {
		t.Fatal("expired entry should be evicted")
	}
	if _, ok := c.entries["fresh"]; !ok {
		t.Fatal("fresh entry should survive eviction")
	}
}
