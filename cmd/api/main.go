package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/devranjit/salontraining-server-sub001/internal/config"
	"github.com/devranjit/salontraining-server-sub001/internal/handler"
	"github.com/devranjit/salontraining-server-sub001/internal/middleware"
	"github.com/devranjit/salontraining-server-sub001/internal/migration"
	"github.com/devranjit/salontraining-server-sub001/internal/registry"
	"github.com/devranjit/salontraining-server-sub001/internal/repository"
	"github.com/devranjit/salontraining-server-sub001/internal/routes"
	"github.com/devranjit/salontraining-server-sub001/internal/service"
	pkgcache "github.com/devranjit/salontraining-server-sub001/pkg/cache"
	pkgjwt "github.com/devranjit/salontraining-server-sub001/pkg/jwt"
	pkglogger "github.com/devranjit/salontraining-server-sub001/pkg/logger"
	pkgmailer "github.com/devranjit/salontraining-server-sub001/pkg/mailer"
	pkgredis "github.com/devranjit/salontraining-server-sub001/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	pkglogger.Init()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis (optional; cache degrades to no-op without it)
	var cacheService *pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if err != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing without cache)", err)
		} else {
			cacheService = pkgcache.NewService(redisClient)
			pkglogger.Info("Connected to Redis")
		}
	}

	// SMTP (optional; expiry warnings are skipped without it)
	var mail pkgmailer.Mailer
	if cfg.SMTP.Enabled {
		mail = pkgmailer.NewSMTPMailer(pkgmailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	// Core wiring
	reg := registry.New(db)
	versionRepo := repository.NewVersionRepository(db)
	binRepo := repository.NewRecycleBinRepository(db)

	versionSvc := service.NewVersionService(versionRepo, reg, cfg.Lifecycle)
	binSvc := service.NewRecycleBinService(binRepo, reg, cfg.Lifecycle, mail)
	entitySvc := service.NewEntityService(reg, versionSvc, binSvc)

	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry.Std())

	h := routes.Handlers{
		RecycleBin:  handler.NewRecycleBinHandler(binSvc, cacheService),
		Versions:    handler.NewVersionHandler(versionSvc, cacheService),
		Entities:    handler.NewEntityHandler(entitySvc),
		Maintenance: handler.NewMaintenanceHandler(binSvc),
	}

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "X-Maintenance-Key"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Setup(router, h, jwtManager, cfg.Maintenance.Secret)

	// Optional in-process sweep ticker. External schedulers hitting the
	// maintenance endpoint remain the primary mechanism; this is a
	// fallback for single-node deployments.
	if cfg.Maintenance.SweepEvery > 0 {
		go runSweepTicker(binSvc, cfg.Maintenance.SweepEvery.Std())
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg := mysqldriver.NewConfig()
	mysqlCfg.User = cfg.Database.User
	mysqlCfg.Passwd = cfg.Database.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Database.Host, cfg.Database.Port)
	mysqlCfg.DBName = cfg.Database.Name
	mysqlCfg.ParseTime = true
	mysqlCfg.Loc = time.UTC
	mysqlCfg.Params = map[string]string{"charset": "utf8mb4"}

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
	return gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), gormCfg)
}

func runSweepTicker(binSvc *service.RecycleBinService, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		result, err := binSvc.Sweep(ctx)
		cancel()
		if err != nil {
			pkglogger.Error("Scheduled sweep failed: %v", err)
			continue
		}
		middleware.RecordSweep(result.Warned, result.Purged)
	}
}
