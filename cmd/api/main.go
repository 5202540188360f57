package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce/ecommerceclient"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim/nominatimclient"
	"github.com/vfg2006/ecom-dashboard/internal/api"
	"github.com/vfg2006/ecom-dashboard/internal/config"
	"github.com/vfg2006/ecom-dashboard/internal/scheduler"
	"github.com/vfg2006/ecom-dashboard/internal/usecases/charting"
	"github.com/vfg2006/ecom-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/ecom-dashboard/pkg/log"
)

func main() {
	// Formato inicial até a configuração ser carregada
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ecommerceClient := ecommerceclient.NewClient(cfg)
	ecommerceIntegrator := ecommerce.New(ecommerceClient)

	nominatimClient := nominatimclient.NewClient(cfg)
	geocoder := nominatim.New(nominatimClient)

	dashboard := dashboarding.NewService(cfg, ecommerceIntegrator, geocoder, charting.NewService())

	keepAliveService := scheduler.NewKeepAliveService(ecommerceIntegrator, cfg)
	if err := keepAliveService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de keep-alive")
	}

	logrus.WithFields(logrus.Fields{
		"ecommerce_api": cfg.Ecommerce.URL,
		"geocoder":      cfg.Geocoder.URL,
		"geocode_limit": cfg.Geocoder.Limit,
	}).Info("Painel configurado")

	server, err := api.New(cfg, dashboard, keepAliveService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
