package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"storefront/cmd"
	adapterhttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/ledgerrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/core/domain/services"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustPrepareDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		configs.StaleOrderTTL,
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		StaleOrderTTL: parseDuration(goDotEnvVariable("STALE_ORDER_TTL"), 30*time.Minute),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8000"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing duration %q: %v", value, err)
	}
	return d
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error initializing ORM: %v", err)
	}
	return gormDB
}

// mustPrepareDatabase migrates the schema and seeds the chart of accounts.
func mustPrepareDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&productrepo.ProductDTO{},
		&ledgerrepo.AccountDTO{},
		&ledgerrepo.EntryDTO{},
		&ledgerrepo.EntryLineDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err = seedChartOfAccounts(gormDB); err != nil {
		log.Fatalf("Error seeding chart of accounts: %v", err)
	}
}

// seedChartOfAccounts creates the four accounts sale postings rely on.
// Existing accounts are left untouched, so reruns are safe.
func seedChartOfAccounts(gormDB *gorm.DB) error {
	defaults := []struct {
		name        string
		accountType ledger.AccountType
	}{
		{services.AccountCash, ledger.Asset},
		{services.AccountSalesRevenue, ledger.Income},
		{services.AccountInventory, ledger.Asset},
		{services.AccountCostOfGoodsSold, ledger.Expense},
	}

	for _, d := range defaults {
		var count int64
		if err := gormDB.Model(&ledgerrepo.AccountDTO{}).
			Where("name = ?", d.name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		account, err := ledger.NewAccount(kernel.NewUUID(), d.name, d.accountType)
		if err != nil {
			return err
		}

		dto := ledgerrepo.AccountDTO{
			ID:          account.ID().Bytes(),
			Name:        account.Name(),
			AccountType: account.AccountType().String(),
			Balance:     account.Balance(),
		}
		if err = gormDB.Create(&dto).Error; err != nil {
			return err
		}
	}

	return nil
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAddOrderItemCommandHandler(),
		app.CreateRemoveOrderItemCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateRestockProductCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateListProductsQueryHandler(),
		app.CreateGetTrialBalanceQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
