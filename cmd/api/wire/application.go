//go:build wireinject
// +build wireinject

package wire

import (
	"insurance-server/cmd/config"
	sharedHTTPAPI "insurance-server/internal/shared_kernel/httpapi"
	sharedPersistence "insurance-server/internal/shared_kernel/persistence"
	sharedUsecases "insurance-server/internal/shared_kernel/usecases"
	"insurance-server/internal/underwriting/httpapi"
	"insurance-server/internal/underwriting/persistence"
	"insurance-server/internal/underwriting/usecases"

	"github.com/google/wire"
)

var UserServiceSet = wire.NewSet(
	sharedPersistence.NewUserRepository,
	wire.Bind(new(sharedUsecases.UserRepository), new(*sharedPersistence.SimpleUserRepository)),
	sharedUsecases.NewUserService,
	wire.Bind(new(sharedUsecases.UserService), new(*sharedUsecases.SimpleUserService)),
	wire.Bind(new(usecases.UserProvider), new(*sharedUsecases.SimpleUserService)),
)

var UnderwritingSet = wire.NewSet(
	persistence.NewRiskTypeRepository,
	wire.Bind(new(usecases.RiskTypeRepository), new(*persistence.SimpleRiskTypeRepository)),
	persistence.NewAccountRepository,
	wire.Bind(new(usecases.AccountRepository), new(*persistence.SimpleAccountRepository)),
	provideRiskTypeCache,
	provideCacheTTL,
	usecases.NewRiskTypeService,
	wire.Bind(new(usecases.RiskTypeService), new(*usecases.SimpleRiskTypeService)),
	usecases.NewAccountService,
	wire.Bind(new(usecases.AccountService), new(*usecases.SimpleAccountService)),
)

func InitializeApplication(appConfig config.AppConfig) (*Application, error) {
	wire.Build(
		provideDatabase,
		provideHealthDatabase,
		provideHealthChecker,
		providePubSubFactory,
		providePublisherFactory,
		provideConsumerFactory,
		UserServiceSet,
		UnderwritingSet,
		usecases.NewRiskTypeCacheInvalidationWorker,
		provideWorkers,
		sharedHTTPAPI.NewUserController,
		httpapi.NewRiskTypeController,
		httpapi.NewAccountController,
		provideAccessLogger,
		provideServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
