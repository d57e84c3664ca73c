package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/metaclient"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/api"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/config"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/usecases/campaigning"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metaClient := metaclient.NewClient(cfg)

	insightService := insighting.NewService(cfg, metaClient)
	campaignService := campaigning.NewService(cfg, metaClient)

	server, err := api.New(cfg, insightService, campaignService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
