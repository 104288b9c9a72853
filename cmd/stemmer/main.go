package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/oarkflow/json"
	"github.com/oarkflow/log"

	"github.com/oarkflow/stemmer"
	"github.com/oarkflow/stemmer/snowball"
	"github.com/oarkflow/stemmer/web"
)

var (
	hostPtr          = flag.String("host", "0.0.0.0", "Domain name or IP")
	portPtr          = flag.String("port", "3000", "Port available to be used on server")
	servePtr         = flag.Bool("serve", false, "Serve the stemming API over HTTP")
	langPtr          = flag.String("lang", "english", "Language name or ISO 639-1 code")
	filePtr          = flag.String("file", "", "File of whitespace separated words to stem ('-' for stdin)")
	configPtr        = flag.String("config", "", "JSON engine configuration file")
	cachePtr         = flag.Int("cache", stemmer.DefaultCacheSize, "Number of stems to cache")
	cacheFilePtr     = flag.String("cache-file", "", "File the stem cache is loaded from and saved to")
	diskCachePtr     = flag.String("disk-cache", "", "Directory that keeps stems evicted from the cache")
	snapshotPtr      = flag.Duration("snapshot", 0, "Interval between stem cache saves, 0 saves on exit only")
	workersPtr       = flag.Int("workers", runtime.NumCPU(), "Workers used for large batches")
	transliteratePtr = flag.Bool("transliterate", false, "Read German ae, oe and ue as umlauts")
	jsonPtr          = flag.Bool("json", false, "Print word/stem pairs as JSON")
)

type pair struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

func main() {
	flag.Parse()
	cfg, err := buildConfig()
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}
	if *servePtr {
		engine, err := stemmer.GetOrSetEngine(web.DefaultKey, cfg)
		if err != nil {
			log.Error().Err(err).Msg("Unable to create engine")
			os.Exit(1)
		}
		defer engine.Close()
		web.StartServer(fmt.Sprintf("%s:%s", *hostPtr, *portPtr))
		return
	}
	engine, err := stemmer.New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Unable to create engine")
		os.Exit(1)
	}
	words := flag.Args()
	if *filePtr != "" {
		fileWords, err := readWords(*filePtr)
		if err != nil {
			log.Error().Err(err).Str("file", *filePtr).Msg("Unable to read words")
			os.Exit(1)
		}
		words = append(words, fileWords...)
	}
	if err := write(os.Stdout, words, engine.StemBatch(words)); err != nil {
		log.Error().Err(err).Msg("Unable to write stems")
		os.Exit(1)
	}
	if err := engine.Close(); err != nil {
		log.Error().Err(err).Msg("Unable to save stem cache")
	}
}

// buildConfig layers a config file over the defaults, then every
// flag given on the command line over the file.
func buildConfig() (*stemmer.Config, error) {
	fileCfg := &stemmer.Config{}
	if *configPtr != "" {
		data, err := os.ReadFile(*configPtr)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, fileCfg); err != nil {
			return nil, err
		}
	}
	cfg := stemmer.MergeConfigs(stemmer.DefaultConfig(web.DefaultKey), fileCfg)
	if isFlagSet("lang") {
		lang, err := snowball.Parse(*langPtr)
		if err != nil {
			return nil, err
		}
		cfg.DefaultLanguage = lang
	}
	if isFlagSet("cache") {
		cfg.CacheSize = *cachePtr
	}
	if isFlagSet("cache-file") {
		cfg.CacheFile = *cacheFilePtr
	}
	if isFlagSet("snapshot") {
		cfg.SnapshotInterval = *snapshotPtr
	}
	if isFlagSet("disk-cache") {
		cfg.DiskCachePath = *diskCachePtr
	}
	if isFlagSet("workers") {
		cfg.Workers = *workersPtr
	}
	if isFlagSet("transliterate") {
		cfg.GermanTransliterate = *transliteratePtr
	}
	return cfg, nil
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func readWords(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return words, scanner.Err()
}

func write(w io.Writer, words, stems []string) error {
	if *jsonPtr {
		pairs := make([]pair, len(words))
		for i := range words {
			pairs[i] = pair{Word: words[i], Stem: stems[i]}
		}
		return json.NewEncoder(w).Encode(pairs)
	}
	out := bufio.NewWriter(w)
	for _, stem := range stems {
		fmt.Fprintln(out, stem)
	}
	return out.Flush()
}
