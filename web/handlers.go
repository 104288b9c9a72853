package web

import (
	"context"
	"errors"
	"time"

	"github.com/oarkflow/frame"
	"github.com/oarkflow/frame/middlewares/server/cors"
	"github.com/oarkflow/frame/middlewares/server/monitor"
	"github.com/oarkflow/frame/pkg/common/utils"
	"github.com/oarkflow/frame/pkg/protocol/consts"
	"github.com/oarkflow/frame/pkg/route"
	"github.com/oarkflow/frame/server"
	"github.com/oarkflow/log"
	"github.com/oarkflow/metadata"

	"github.com/oarkflow/stemmer"
	"github.com/oarkflow/stemmer/snowball"
)

// DefaultKey names the engine used when a request does not pick one.
const DefaultKey = "default"

type StemController struct{}

func NewStemController() *StemController {
	return &StemController{}
}

var controller = NewStemController()

// resolve finds the engine for key and the language for a path
// parameter.  "default" or an empty language means the engine's own.
func resolve(key, lang string) (*stemmer.Engine, snowball.Language, error) {
	if key == "" {
		key = DefaultKey
	}
	engine, err := stemmer.GetEngine(key)
	if err != nil {
		return nil, "", err
	}
	if lang == "" || lang == "default" {
		return engine, engine.Language(), nil
	}
	language, err := snowball.Parse(lang)
	if err != nil {
		return nil, "", err
	}
	return engine, language, nil
}

func stemWords(engine *stemmer.Engine, lang snowball.Language, words []string) []StemResult {
	stems := engine.StemBatch(words, lang)
	results := make([]StemResult, len(words))
	for i, word := range words {
		results[i] = StemResult{Word: word, Stem: stems[i]}
	}
	return results
}

// engineConfig turns a NewEngine request into an engine config
// layered over the defaults.
func engineConfig(req NewEngine) (*stemmer.Config, error) {
	if req.Key == "" {
		return nil, errors.New("key not provided")
	}
	cfg := stemmer.MergeConfigs(stemmer.GetConfig(req.Key), &stemmer.Config{
		CacheSize:           req.CacheSize,
		GermanTransliterate: req.GermanTransliterate,
		Workers:             req.Workers,
		BatchSize:           req.BatchSize,
	})
	if req.Language != "" {
		lang, err := snowball.Parse(req.Language)
		if err != nil {
			return nil, err
		}
		cfg.DefaultLanguage = lang
	}
	if req.TrimPunctuation != nil {
		cfg.TrimPunctuation = *req.TrimPunctuation
	}
	return cfg, nil
}

func (f *StemController) Languages(_ context.Context, ctx *frame.Context) {
	Success(ctx, consts.StatusOK, snowball.Languages())
}

func (f *StemController) Stem(_ context.Context, ctx *frame.Context) {
	var query Query
	err := ctx.Bind(&query)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	engine, lang, err := resolve(query.Key, ctx.Param("lang"))
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, StemResult{Word: query.Query, Stem: engine.Stem(query.Query, lang)})
}

func (f *StemController) StemBatch(_ context.Context, ctx *frame.Context) {
	var req BatchRequest
	err := ctx.Bind(&req)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if len(req.Words) == 0 {
		Failed(ctx, consts.StatusBadRequest, "No words provided", nil)
		return
	}
	engine, lang, err := resolve(req.Key, ctx.Param("lang"))
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, utils.H{
		"language": lang,
		"stems":    stemWords(engine, lang, req.Words),
	})
}

func (f *StemController) Metadata(_ context.Context, ctx *frame.Context) {
	engine, _, err := resolve(ctx.Param("key"), "")
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, engine.Metadata())
}

func (f *StemController) ClearCache(_ context.Context, ctx *frame.Context) {
	engine, _, err := resolve(ctx.Param("key"), "")
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	engine.ClearCache()
	Success(ctx, consts.StatusOK, nil, "Cache cleared...")
}

func (f *StemController) Engines(_ context.Context, ctx *frame.Context) {
	Success(ctx, consts.StatusOK, stemmer.AvailableEngines())
}

func (f *StemController) NewEngine(_ context.Context, ctx *frame.Context) {
	var req NewEngine
	err := ctx.Bind(&req)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	cfg, err := engineConfig(req)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	engine, err := stemmer.New(cfg)
	if err != nil {
		log.Error().Err(err).Str("key", req.Key).Msg("Unable to create engine")
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	stemmer.SetEngine(req.Key, engine)
	Success(ctx, consts.StatusOK, engine.Metadata(), "New stemming engine added")
}

func (f *StemController) StemFromDatabase(_ context.Context, ctx *frame.Context) {
	var dbConfig Database
	err := ctx.Bind(&dbConfig)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if _, err := databaseLanguage(dbConfig); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	con := metadata.New(metadata.Config{
		Name:     dbConfig.EngineKey,
		Host:     dbConfig.Host,
		Port:     dbConfig.Port,
		Driver:   dbConfig.Driver,
		Username: dbConfig.Username,
		Password: dbConfig.Password,
		Database: dbConfig.Database,
		SslMode:  dbConfig.SslMode,
	})
	db, err := con.Connect()
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	start := time.Now()
	go func(db metadata.DataSource, dbConfig Database, start time.Time) {
		if err := StemFromDB(db, dbConfig, start); err != nil {
			log.Error().Err(err).Str("table", dbConfig.TableName).Msg("Unable to stem column")
		}
	}(db, dbConfig, start)
	Success(ctx, consts.StatusOK, utils.H{
		"engine_key": dbConfig.EngineKey,
		"started_at": start,
	}, "Stemming started in background")
}

func StemRoutes(route route.IRouter) route.IRouter {
	route.GET("/languages", controller.Languages)
	route.GET("/engines", controller.Engines)
	route.POST("/new", controller.NewEngine)
	route.GET("/stem/:lang", controller.Stem)
	route.POST("/stem/:lang/batch", controller.StemBatch)
	route.GET("/metadata/:key", controller.Metadata)
	route.POST("/cache/:key/clear", controller.ClearCache)
	route.POST("/database/stem", controller.StemFromDatabase)
	return route
}

func StartServer(addr string, routePrefix ...string) {
	prefix := "/"
	if len(routePrefix) > 0 {
		prefix = routePrefix[0]
	}
	srv := server.New(
		server.WithDisablePrintRoute(true),
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithStreamBody(true),
	)
	srv.Use(cors.Default())
	srv.GET("/monitor", monitor.New())
	StemRoutes(srv.Group(prefix))
	log.Info().Str("addr", addr).Msg("Stemming server started...")
	srv.Spin()
}
