package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xmirrord/internal/config"
	"xmirrord/internal/log"
	"xmirrord/pkg/db/client/redis"
	"xmirrord/pkg/db/service"
	"xmirrord/pkg/rest"
	"xmirrord/pkg/rest/controller"
)

func main() {
	conf := configs.NewServerConfig()
	log.Init(conf.LogLevel)
	log.Info("Initializing APP")

	db := redis.NewClient(conf.DatabaseUrl, conf.DatabasePoolSize)
	configs.ErrHandler("connecting database", db.NewRedisClient())
	defer db.Close()
	log.Infof("Connected to database at %s", conf.DatabaseUrl)

	mirrors := service.NewMirrorService(db, service.WithFetchWorkers(conf.DatabaseFetchWorkers))

	r := rest.NewEngine(conf.AllowOrigin)
	rest.InitFileController(r, conf.FilesDir)
	mc := controller.NewMirrorController(mirrors)
	rest.InitGuestController(r, mc)
	rest.InitLegacyController(r, mc)
	rest.InitAdminController(r, controller.NewAdminController(mirrors))

	srv := &http.Server{
		Addr:         conf.BindAddr,
		Handler:      r,
		ReadTimeout:  conf.ReadTimeout,
		WriteTimeout: conf.WriteTimeout,
	}
	go func() {
		log.Infof("Listening on %s", conf.BindAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Serving http found error:%v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Shutting down http server found error:%v", err)
	}
}
