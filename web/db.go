package web

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/oarkflow/filters"
	"github.com/oarkflow/log"
	"github.com/oarkflow/metadata"
	"github.com/oarkflow/squealx"

	"github.com/oarkflow/stemmer/snowball"
)

type Database struct {
	Filters   []*filters.Filter `json:"filters"`
	TableName string            `json:"table_name"`
	Database  string            `json:"database"`
	Query     string            `json:"query"`
	Driver    string            `json:"driver"`
	EngineKey string            `json:"engine_key"`
	Field     string            `json:"field"`
	Language  string            `json:"language"`
	Password  string            `json:"password"`
	Host      string            `json:"host"`
	SslMode   string            `json:"ssl_mode"`
	Username  string            `json:"username"`
	Port      int               `json:"port"`
	BatchSize int               `json:"batch_size"`
}

// columnValues collects the string values of field from rows.
func columnValues(rows []map[string]any, field string) []string {
	words := make([]string, 0, len(rows))
	for _, row := range rows {
		switch v := row[field].(type) {
		case string:
			words = append(words, v)
		case []byte:
			words = append(words, string(v))
		case nil:
		default:
			words = append(words, fmt.Sprintf("%v", v))
		}
	}
	return words
}

// matchingRows keeps the rows satisfying every condition.
func matchingRows(rows []map[string]any, conditions []*filters.Filter) []map[string]any {
	if len(conditions) == 0 {
		return rows
	}
	group := &filters.FilterGroup{Operator: filters.AND, Filters: conditions}
	var matched []map[string]any
	for _, row := range rows {
		if filters.MatchGroup(row, group) {
			matched = append(matched, row)
		}
	}
	return matched
}

// StemFromDB stems every value of one column of a table, page by
// page, warming the engine's cache with the vocabulary.
func StemFromDB(db metadata.DataSource, dbConfig Database, start time.Time) error {
	if dbConfig.BatchSize == 0 {
		dbConfig.BatchSize = 20000
	}
	if dbConfig.Field == "" {
		return fmt.Errorf("field not provided")
	}
	query := fmt.Sprintf("SELECT %s FROM %s", dbConfig.Field, dbConfig.TableName)
	if len(dbConfig.Filters) > 0 {
		query = fmt.Sprintf("SELECT * FROM %s", dbConfig.TableName)
	}
	if dbConfig.Query != "" {
		query = strings.Split(strings.TrimSuffix(dbConfig.Query, ";"), "LIMIT")[0]
	}
	engine, lang, err := resolve(dbConfig.EngineKey, dbConfig.Language)
	if err != nil {
		return err
	}
	defer db.Close()
	totalCount, totalRows := 0, 0
	stems := make(map[string]struct{})
	paging := &squealx.Paging{
		Limit: dbConfig.BatchSize,
		Page:  1,
	}
	for {
		resp := db.GetRawPaginatedCollection(query, *paging)
		if resp.Error != nil {
			return resp.Error
		}
		var rows []map[string]any
		switch items := resp.Items.(type) {
		case []map[string]any:
			rows = items
		case *[]map[string]any:
			if items != nil {
				rows = *items
			}
		}
		if len(rows) == 0 {
			break
		}
		totalRows += len(rows)
		words := columnValues(matchingRows(rows, dbConfig.Filters), dbConfig.Field)
		for _, stem := range engine.StemBatch(words, lang) {
			stems[stem] = struct{}{}
		}
		totalCount += len(words)
		runtime.GC()
		paging.Page++
	}
	log.Info().Str("latency", fmt.Sprintf("%s", time.Since(start))).Int("total_rows", totalRows).Int("total_words", totalCount).Int("distinct_stems", len(stems)).Str("language", string(lang)).Msg("Stemmed column...")
	return nil
}

// databaseLanguage checks the language of a database request before
// any connection is made.
func databaseLanguage(dbConfig Database) (snowball.Language, error) {
	if dbConfig.Language == "" {
		return "", nil
	}
	return snowball.Parse(dbConfig.Language)
}
