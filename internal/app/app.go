package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskaamelia-wd/sumq/internal/app/server"
	"github.com/riskaamelia-wd/sumq/internal/clients/groq"
	"github.com/riskaamelia-wd/sumq/internal/config"
	"github.com/riskaamelia-wd/sumq/internal/delivery/http"
	"github.com/riskaamelia-wd/sumq/internal/service"
	"github.com/riskaamelia-wd/sumq/internal/service/generation"
	"github.com/riskaamelia-wd/sumq/internal/service/slide"
	"github.com/riskaamelia-wd/sumq/internal/service/template"
	"github.com/riskaamelia-wd/sumq/internal/service/topic"
	"github.com/riskaamelia-wd/sumq/internal/service/viewer"
	"github.com/riskaamelia-wd/sumq/internal/storage/elastic"
	"github.com/riskaamelia-wd/sumq/internal/storage/minio_storage"
	"github.com/riskaamelia-wd/sumq/internal/storage/postgres"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	pg, err := postgres.NewPostgresPool(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	if err != nil {
		log.FatalErr("error connecting to database", err)
	}
	defer pg.Close()

	esClient, err := elastic.NewElasticClient(cfg.ES.Password, cfg.ES.Hosts)
	if err != nil {
		log.FatalErr("error connecting to elasticsearch", err)
	}
	index := cfg.ES.Index
	if index == "" {
		index = elastic.TopicIndex
	}
	searchRepo := elastic.NewTopicSearchRepository(esClient, index)
	if err := searchRepo.CreateIndexIfNotExist(context.Background()); err != nil {
		log.FatalErr("error creating search index", err)
	}

	minioClient, err := minio_storage.NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		log.FatalErr("error connecting to minio", err)
	}
	imageStorage, err := minio_storage.NewImageStorage(minioClient, cfg.Minio.Bucket, cfg.Minio.PresignTTL)
	if err != nil {
		log.FatalErr("error preparing image bucket", err)
	}

	groqClient, err := groq.NewClient(cfg.Groq.APIURL, cfg.Groq.APIKey, cfg.Groq.Model)
	if err != nil {
		log.FatalErr("error creating groq client", err)
	}

	topicRepo := postgres.NewTopicPostgres(pg.Pool)
	subtopicRepo := postgres.NewSubtopicPostgres(pg.Pool)
	slideRepo := postgres.NewSlidePostgres(pg.Pool)
	templateRepo := postgres.NewTemplatePostgres(pg.Pool)

	u := service.Collection{
		TopicService:      topic.NewTopicService(log, topicRepo, subtopicRepo, searchRepo),
		SlideService:      slide.NewSlideService(log, slideRepo, subtopicRepo, imageStorage),
		TemplateService:   template.NewTemplateService(log, templateRepo),
		ViewerService:     viewer.NewViewerService(log, slideRepo, subtopicRepo, imageStorage),
		GenerationService: generation.NewGenerationService(log, groqClient),
	}

	r := http.InitRoutes(log, cfg, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server stopped", err)
	}
	err = srv.Shutdown()
	if err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
