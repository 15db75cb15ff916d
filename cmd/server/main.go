package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/config"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/dsn"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/handler"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/auth"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/mail"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/storage"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/prediction"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/repository"
)

func main() {
	log.Info("application started")

	cfg, err := config.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}

	jwtSvc := auth.NewJWTService(cfg.JWTSecret)

	sessionSvc, err := auth.NewSessionService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, session cookie auth disabled")
		sessionSvc = nil
	}

	var source prediction.CandidateSource
	modelSrc, err := prediction.NewModelSource(cfg.ModelPath)
	if err != nil {
		log.WithError(err).Warn("model artifact unavailable, falling back to rule-based predictions")
		source = prediction.NewRuleSource()
	} else {
		source = modelSrc
	}
	engine := prediction.NewEngine(source)
	log.WithField("source", engine.SourceName()).Info("prediction engine ready")

	mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.FromEmail, cfg.AdminEmail)

	minioEndpoint := fmt.Sprintf("%s:%s", cfg.MinIOHost, cfg.MinIOPort)
	reports, err := storage.NewMinIO(minioEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, false, "http://"+minioEndpoint)
	if err != nil {
		log.WithError(err).Warn("minio unavailable, report archiving disabled")
		reports = nil
	}

	h := handler.NewHandler(repo, cfg, jwtSvc, sessionSvc, engine, mailer, reports)

	router := gin.Default()
	h.RegisterHandler(router)

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	log.WithField("addr", addr).Info("server listening")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}

	log.Info("application terminated")
}
