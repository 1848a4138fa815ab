package di

import (
	"github.com/vporoshin/solace/internal/adapter/completion"
	"github.com/vporoshin/solace/internal/app"
	"github.com/vporoshin/solace/internal/config"
	"github.com/vporoshin/solace/internal/logger"
	"github.com/vporoshin/solace/internal/pkg/auth"
	"github.com/vporoshin/solace/internal/server/http/handlers"
	"github.com/vporoshin/solace/internal/server/http/router"
	"github.com/vporoshin/solace/internal/storage/postgres"
	"github.com/vporoshin/solace/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		completion.Module,
		usecase.Module,
		fx.Provide(func(client completion.Client) usecase.ReplySource { return client }),
		fx.Provide(func(facade *app.JournalFacade) handlers.JournalFacade { return facade }),
		fx.Provide(func(storage *postgres.Storage) handlers.HealthChecker { return storage }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
