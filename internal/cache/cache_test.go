package cache

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestSetGetAndExpiry(t *testing.T) {
	clk := &fakeClock{t: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
	c := newCache(true, clk.now)

	etag := c.Set("k", []byte(`{"a":1}`), time.Minute)
	data, got, ok := c.Get("k")
	if !ok || string(data) != `{"a":1}` || got != etag {
		t.Fatalf("Get = %q %q %v", data, got, ok)
	}

	clk.t = clk.t.Add(2 * time.Minute)
	if _, _, ok := c.Get("k"); ok {
		t.Fatal("entry should have expired")
	}

	c.evict()
	if n := c.Stats()["total_keys"]; n != 0 {
		t.Fatalf("total_keys after evict = %v", n)
	}
}

func TestDisabledCacheNeverHits(t *testing.T) {
	c := newCache(false, time.Now)
	etag := c.Set("k", []byte("x"), time.Hour)
	if etag != ComputeETag([]byte("x")) {
		t.Errorf("etag = %q", etag)
	}
	if _, _, ok := c.Get("k"); ok {
		t.Fatal("disabled cache returned a hit")
	}
}

func TestStatsCountsHitsAndMisses(t *testing.T) {
	c := newCache(true, time.Now)
	c.Set("k", []byte("x"), time.Hour)
	c.Get("k")
	c.Get("missing")

	s := c.Stats()
	if s["hits"] != uint64(1) || s["misses"] != uint64(1) {
		t.Fatalf("stats = %v", s)
	}
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("body"))
	cases := []struct {
		header string
		want   bool
	}{
		{"", false},
		{"*", true},
		{etag, true},
		{`W/"deadbeef"`, false},
	}
	for _, tc := range cases {
		if got := CheckETagMatch(tc.header, etag); got != tc.want {
			t.Errorf("CheckETagMatch(%q) = %v, want %v", tc.header, got, tc.want)
		}
	}
}
