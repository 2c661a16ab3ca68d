// Command exifserver runs the image upload service.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soypat/exifmeta/server"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var (
		flagConfig   = flag.String("config", "", "TOML configuration file")
		flagPort     = flag.Int("port", 0, "listen port, overrides config and PORT")
		flagStatic   = flag.String("static", "", "directory with the HTML pages")
		flagUploads  = flag.String("uploads", "", "directory for in-flight uploads")
		flagLogLevel = flag.String("log-level", "", "logrus level (debug, info, warn, error)")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := server.LoadConfig(*flagConfig)
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *flagPort
		case "static":
			cfg.StaticDir = *flagStatic
		case "uploads":
			cfg.UploadDir = *flagUploads
		case "log-level":
			cfg.LogLevel = *flagLogLevel
		}
	})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("bad log level")
	}
	log.SetLevel(level)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("creating server")
	}
	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("port", strconv.Itoa(cfg.Port)).Info("listening")
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return httpSrv.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
