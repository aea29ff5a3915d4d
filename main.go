package main

import (
	"log"
	"net/http"

	"opsconsole/bizerror"
	"opsconsole/caution"
	"opsconsole/event"
	"opsconsole/infra/tracing"
	"opsconsole/knowledge"
	"opsconsole/persistence"
	"opsconsole/rca"
	"opsconsole/rfc"
	"opsconsole/risk"
	"opsconsole/servehttp"
	"opsconsole/session"
	"opsconsole/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	log.Println("service start")

	storageConfig, err := persistence.ParseStorageConfigFromEnv()
	if err != nil {
		log.Fatalf("parse storage config failed %v\n", err)
	}

	switch storageConfig.Driver {
	case "memory":
		storage.ActiveStore = storage.NewMemoryStore()
	case "file":
		fileStore, err := storage.NewFileStore(storageConfig.Dir)
		if err != nil {
			log.Fatalf("failed to prepare storage directory %v\n", err)
		}
		storage.ActiveStore = fileStore
	case "mysql":
		// create database (no conflict)
		if err := persistence.PrepareMysqlDatabase(storageConfig.Database.DriverArgs); err != nil {
			log.Fatalf("failed to prepare database %v\n", err)
		}
		ds := &persistence.DataSourceManager{DatabaseConfig: storageConfig.Database}
		if err := ds.Start(); err != nil {
			log.Fatalf("database connection failed %v\n", err)
		}
		defer ds.Stop()
		if err := ds.GormDB().AutoMigrate(&persistence.KvEntry{}).Error; err != nil {
			log.Fatalf("database migration failed %v\n", err)
		}
		storage.ActiveStore = &persistence.GormStore{DS: ds}
	}

	knowledge.Bootstrap()
	rfc.Bootstrap()
	rca.Bootstrap()
	risk.Bootstrap()
	caution.Bootstrap()
	event.Bootstrap()

	engine := gin.Default()
	engine.Use(tracing.TracingIngress())
	engine.Use(servehttp.RateLimiting(rate.NewLimiter(100, 200)))
	engine.Use(bizerror.ErrorHandling())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "opsconsole")
	})

	knowledge.RegisterKnowledgeRestAPI(engine)
	rfc.RegisterRfcsRestAPI(engine)
	rca.RegisterRcasRestAPI(engine)
	risk.RegisterRisksRestAPI(engine)
	caution.RegisterCautionRestAPI(engine)
	event.RegisterEventsRestAPI(engine)
	session.RegisterSessionsRestAPI(engine)

	servehttp.StartHTTPServer(engine)
}
