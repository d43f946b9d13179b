package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/7phs/zerobuf"
	"github.com/7phs/zerobuf/internal/config"
	"github.com/7phs/zerobuf/internal/linestats"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server interface {
	Start() error
	Stop()
}

type DefaultServer struct {
	logger              *zap.Logger
	maintenance         GroupMaintenance
	port                int
	maintenanceInterval time.Duration
	server              fasthttp.Server

	cancelCtx context.Context
	cancel    func()

	counter linestats.Counter
}

func NewServer(
	logger *zap.Logger,
	conf config.Config,
	counter linestats.Counter,
	maintenance ...Maintenance,
) Server {
	cancelCtx, cancel := context.WithCancel(context.Background())

	srv := &DefaultServer{
		logger:              logger,
		counter:             counter,
		port:                conf.Port(),
		maintenanceInterval: conf.Maintenance(),

		cancelCtx: cancelCtx,
		cancel:    cancel,

		maintenance: NewGroupMaintenance(logger, maintenance...),
	}
	srv.server.Handler = NewLoggerHandler(logger, srv.handler)

	return srv
}

func (o *DefaultServer) handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Method()) {
	case http.MethodPost:
		o.logger.Debug("handle POST",
			zap.Int("body", len(ctx.Request.Body())),
		)

		stats, err := o.counter.Count(bytes.NewReader(ctx.Request.Body()))
		if err != nil {
			o.handlerError(ctx, err)
			return
		}

		body, err := json.Marshal(stats)
		if err != nil {
			o.handlerError(ctx, err)
			return
		}

		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetContentType("application/json")
		ctx.SetBody(body)

	case http.MethodGet:
		if string(ctx.Path()) != "/healthz" {
			ctx.Error("Not found", fasthttp.StatusNotFound)
			return
		}

		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")

	default:
		ctx.Error("Unsupported method", fasthttp.StatusMethodNotAllowed)
	}
}

func (o *DefaultServer) handlerError(ctx *fasthttp.RequestCtx, err error) {
	o.logger.Error("failed to handle request",
		zap.Error(err),
	)

	switch err {
	case zerobuf.ErrAllocationFailure:
		ctx.Error("Out of capacity", fasthttp.StatusInsufficientStorage)
	default:
		ctx.Error("Internal error", fasthttp.StatusInternalServerError)
	}
}

func (o *DefaultServer) Start() error {
	var wg errgroup.Group

	wg.Go(func() error {
		o.logger.Info("maintenance: start")

		o.maintenance.Start(o.cancelCtx, o.maintenanceInterval)
		return nil
	})

	wg.Go(func() error {
		port := fmt.Sprintf(":%d", o.port)

		o.logger.Info("http: listen",
			zap.String("port", port),
		)

		return o.server.ListenAndServe(port)
	})

	return wg.Wait()
}

func (o *DefaultServer) Stop() {
	var wg errgroup.Group

	wg.Go(func() error {
		o.logger.Info("http: shutdown")

		return o.server.Shutdown()
	})

	wg.Go(func() error {
		o.logger.Info("maintenance: shutdown")

		o.cancel()

		return nil
	})

	err := wg.Wait()
	if err != nil {
		o.logger.Error("failed to stop server",
			zap.Error(err),
		)
	}
}
