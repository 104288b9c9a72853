package stemmer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oarkflow/stemmer/snowball"
)

func TestJanitorSavesPeriodically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.msgpack")
	c := NewCache(10)
	c.Set(snowball.English, "running", "run")
	j := newJanitor(c, path, 10*time.Millisecond)
	go j.Run()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(path); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("cache was never saved")
		}
		time.Sleep(5 * time.Millisecond)
	}
	j.Stop()
	j.Stop()

	loaded := NewCache(10)
	if err := loaded.Load(path); err != nil {
		t.Fatal(err)
	}
	if stem, ok := loaded.Get(snowball.English, "running"); !ok || stem != "run" {
		t.Errorf("Get(running) = %q %v", stem, ok)
	}
}
