package web

import (
	"errors"
	"reflect"
	"testing"

	"github.com/oarkflow/filters"

	"github.com/oarkflow/stemmer"
	"github.com/oarkflow/stemmer/snowball"
)

func TestEngineConfig(t *testing.T) {
	if _, err := engineConfig(NewEngine{}); err == nil {
		t.Error("a request without a key should fail")
	}
	if _, err := engineConfig(NewEngine{Key: "x", Language: "klingon"}); !errors.Is(err, snowball.ErrUnknownLanguage) {
		t.Errorf("error = %v, want ErrUnknownLanguage", err)
	}

	trim := false
	cfg, err := engineConfig(NewEngine{
		Key:             "docs-de",
		Language:        "de",
		CacheSize:       50,
		TrimPunctuation: &trim,
		BatchSize:       10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Key != "docs-de" || cfg.DefaultLanguage != snowball.German {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.CacheSize != 50 || cfg.BatchSize != 10 || cfg.TrimPunctuation {
		t.Errorf("cfg = %+v", cfg)
	}

	cfg, err = engineConfig(NewEngine{Key: "defaults"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLanguage != snowball.English || !cfg.TrimPunctuation || cfg.CacheSize != stemmer.DefaultCacheSize {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestResolve(t *testing.T) {
	defer stemmer.DeleteEngine(DefaultKey)

	engine, lang, err := resolve("", "fr")
	if err != nil {
		t.Fatal(err)
	}
	if engine.Key() != DefaultKey || lang != snowball.French {
		t.Errorf("resolve = %q %q", engine.Key(), lang)
	}
	if _, lang, _ = resolve("", "default"); lang != engine.Language() {
		t.Errorf("default language = %q", lang)
	}
	if _, _, err := resolve("", "klingon"); err == nil {
		t.Error("unknown language should fail")
	}
}

func TestStemWords(t *testing.T) {
	defer stemmer.DeleteEngine(DefaultKey)

	engine, lang, err := resolve(DefaultKey, "en")
	if err != nil {
		t.Fatal(err)
	}
	got := stemWords(engine, lang, []string{"skies", "running!"})
	want := []StemResult{{Word: "skies", Stem: "sky"}, {Word: "running!", Stem: "run"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stemWords = %v, want %v", got, want)
	}
}

func TestColumnValues(t *testing.T) {
	rows := []map[string]any{
		{"title": "Running"},
		{"title": []byte("skies")},
		{"title": nil},
		{"title": 42},
		{"other": "x"},
	}
	got := columnValues(rows, "title")
	want := []string{"Running", "skies", "42"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("columnValues = %v, want %v", got, want)
	}
}

func TestMatchingRows(t *testing.T) {
	rows := []map[string]any{
		{"title": "running", "lang": "en"},
		{"title": "laufen", "lang": "de"},
		{"title": "skies", "lang": "en"},
	}
	if got := matchingRows(rows, nil); len(got) != 3 {
		t.Errorf("no conditions kept %d rows", len(got))
	}
	got := matchingRows(rows, []*filters.Filter{{Field: "lang", Operator: filters.Equal, Value: "en"}})
	if want := []string{"running", "skies"}; !reflect.DeepEqual(columnValues(got, "title"), want) {
		t.Errorf("matchingRows = %v, want titles %v", got, want)
	}
}

func TestDatabaseLanguage(t *testing.T) {
	if lang, err := databaseLanguage(Database{}); err != nil || lang != "" {
		t.Errorf("empty language = %q %v", lang, err)
	}
	if lang, err := databaseLanguage(Database{Language: "pt"}); err != nil || lang != snowball.Portuguese {
		t.Errorf("pt = %q %v", lang, err)
	}
	if _, err := databaseLanguage(Database{Language: "klingon"}); err == nil {
		t.Error("unknown language should fail")
	}
}
