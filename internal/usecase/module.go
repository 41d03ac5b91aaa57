package usecase

import (
	"go.uber.org/fx"

	"github.com/snstore/backend/internal/validation"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	validation.New,
	NewAuthUseCase,
	NewAccountUseCase,
	NewCatalogUseCase,
	NewOrderUseCase,
	NewAddressUseCase,
)
