package di

import (
	"go.uber.org/fx"

	"github.com/snstore/backend/internal/adapter/cache"
	"github.com/snstore/backend/internal/adapter/shipping"
	"github.com/snstore/backend/internal/app"
	"github.com/snstore/backend/internal/config"
	"github.com/snstore/backend/internal/logger"
	"github.com/snstore/backend/internal/pkg/auth"
	"github.com/snstore/backend/internal/server/http/handlers"
	"github.com/snstore/backend/internal/server/http/router"
	"github.com/snstore/backend/internal/storage/postgres"
	"github.com/snstore/backend/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		shipping.Module,
		usecase.Module,
		app.Module,
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		fx.Provide(func(s *postgres.Storage) router.HealthChecker { return s }),
		router.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
