package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/krobus00/order-splitter-service/internal/config"
	httpHandler "github.com/krobus00/order-splitter-service/internal/handler/ordersplitter/http"
	"github.com/krobus00/order-splitter-service/internal/infrastructure"
	"github.com/krobus00/order-splitter-service/internal/repository"
	"github.com/krobus00/order-splitter-service/internal/service/ordersplitter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func StartServer(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orderLedgerRepo := repository.NewOrderLedgerRepository()
	orderSplitterService := ordersplitter.NewOrderSplitterService(orderLedgerRepo)
	orderSplitterHTTPHandler := httpHandler.NewOrderSplitterHTTPHandler(orderSplitterService)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Group(func(r chi.Router) {
		r.Use(httpHandler.RequireAPIKey)
		orderSplitterHTTPHandler.Register(r)
	})

	httpPort := fmt.Sprintf(":%s", config.Env.Port["http"])
	httpServer := infrastructure.NewHTTPServerWithConfig(infrastructure.HTTPServerConfig{
		Addr:            httpPort,
		ShutdownTimeout: config.Env.GracefulShutdownTimeout,
	}, router)

	go func() {
		err := httpServer.Start()
		if err != nil {
			logrus.Error(err)
		}
	}()
	logrus.Info(fmt.Sprintf("http server started on %s", httpPort))

	wait := gracefulShutdown(ctx, config.Env.GracefulShutdownTimeout, map[string]operation{
		"http": func(ctx context.Context) error {
			cancel()
			return httpServer.Shutdown(ctx)
		},
	})

	<-wait
}
