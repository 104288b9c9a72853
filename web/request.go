package web

type Query struct {
	Query string `json:"q" query:"q" validate:"required"`
	Key   string `json:"k" query:"k"`
}

type BatchRequest struct {
	Key   string   `json:"key"`
	Words []string `json:"words"`
}

type NewEngine struct {
	Key                 string `json:"key"`
	Language            string `json:"language"`
	CacheSize           int    `json:"cache_size"`
	TrimPunctuation     *bool  `json:"trim_punctuation"`
	GermanTransliterate bool   `json:"german_transliterate"`
	Workers             int    `json:"workers"`
	BatchSize           int    `json:"batch_size"`
}

type StemResult struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}
