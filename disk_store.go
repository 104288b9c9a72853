package stemmer

import (
	"github.com/oarkflow/flydb"

	"github.com/oarkflow/stemmer/snowball"
)

// diskStore keeps stems evicted from the in-memory cache.
type diskStore struct {
	client *flydb.DB[[]byte, []byte]
}

func openDiskStore(basePath string) (*diskStore, error) {
	client, err := flydb.Open[[]byte, []byte](basePath, nil)
	if err != nil {
		return nil, err
	}
	return &diskStore{client: client}, nil
}

func diskKey(lang snowball.Language, word string) []byte {
	return []byte(string(lang) + "\x00" + word)
}

func (s *diskStore) Set(lang snowball.Language, word, stem string) error {
	return s.client.Put(diskKey(lang, word), []byte(stem))
}

func (s *diskStore) Get(lang snowball.Language, word string) (string, bool) {
	stem, err := s.client.Get(diskKey(lang, word))
	if err != nil {
		return "", false
	}
	return string(stem), true
}

func (s *diskStore) Del(lang snowball.Language, word string) error {
	return s.client.Delete(diskKey(lang, word))
}

func (s *diskStore) Len() uint32 {
	return s.client.Count()
}

func (s *diskStore) Close() error {
	return s.client.Close()
}
