package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/wumpus-api/api"
	api_i "github.com/beka-birhanu/wumpus-api/api/i"
	"github.com/beka-birhanu/wumpus-api/api/identity"
	"github.com/beka-birhanu/wumpus-api/api/worldapi"
	"github.com/beka-birhanu/wumpus-api/config"
	logger "github.com/beka-birhanu/wumpus-api/infrastruture/log"
	"github.com/beka-birhanu/wumpus-api/infrastruture/repo"
	"github.com/beka-birhanu/wumpus-api/infrastruture/stats"
	"github.com/beka-birhanu/wumpus-api/infrastruture/telemetry"
	"github.com/beka-birhanu/wumpus-api/infrastruture/token"
	"github.com/beka-birhanu/wumpus-api/service"
	"github.com/beka-birhanu/wumpus-api/service/i"
	"github.com/beka-birhanu/wumpus-api/world"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

// Global variables for dependencies
var (
	mongoClient       *mongo.Client
	redisClient       *redis.Client
	userRepo          i.UserRepo
	worldStats        i.WorldStatsStore
	worldService      i.WorldGenerator
	worldController   api_i.Controller
	jwtTokenizer      i.Tokenizer
	authService       i.Authenticator
	authController    api_i.Controller
	router            *api.Router
	tracer            trace.Tracer
	shutdownTelemetry func(context.Context) error
	appLogger         *logger.Logger
)

func initTelemetry(ctx context.Context) error {
	if !config.Envs.OTELEnabled {
		tracer = telemetry.NoopTracer()
		appLogger.Info("Telemetry disabled")
		return nil
	}

	var err error
	shutdownTelemetry, err = telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	tracer = telemetry.Tracer("world")
	appLogger.Info("Telemetry initialized")
	return nil
}

func initMongo(ctx context.Context) error {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		_ = mongoClient.Disconnect(ctx)
		return fmt.Errorf("pinging MongoDB: %w", err)
	}
	appLogger.Info("Connected to MongoDB")
	return nil
}

func initRedis(ctx context.Context) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return fmt.Errorf("pinging Redis: %w", err)
	}
	appLogger.Info("Connected to Redis")
	return nil
}

func initUserRepo(ctx context.Context) error {
	var err error
	userRepo, err = repo.NewUserRepo(ctx, mongoClient, config.Envs.DBName, "users")
	if err != nil {
		return fmt.Errorf("creating user repository: %w", err)
	}
	appLogger.Info("User repository initialized")
	return nil
}

func initWorldStats() error {
	var err error
	worldStats, err = stats.NewRedisWorldStats(redisClient, config.Envs.StatsPrefix)
	if err != nil {
		return fmt.Errorf("creating world stats store: %w", err)
	}
	appLogger.Info("World stats store initialized")
	return nil
}

func initWorldService() error {
	profile, err := config.LoadWorldProfile(config.Envs.WorldProfilePath)
	if err != nil {
		return fmt.Errorf("loading world profile: %w", err)
	}

	factory, err := world.NewFactory(&world.Options{
		PitProbability: profile.PitProbability,
		MaxAttempts:    profile.MaxAttempts,
	})
	if err != nil {
		return fmt.Errorf("creating world factory: %w", err)
	}

	worldLogger, err := logger.New("WORLD", config.ColorCyan, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating world logger: %w", err)
	}

	worldService, err = service.NewWorldService(worldStats, tracer, worldLogger, &service.WorldOptions{
		DefaultSide: profile.Side,
		Factory:     factory,
	})
	if err != nil {
		return fmt.Errorf("creating world service: %w", err)
	}
	appLogger.Info(fmt.Sprintf("World service initialized: side=%d pit_probability=%.2f", profile.Side, *profile.PitProbability))
	return nil
}

func initWorldController() error {
	var err error
	worldController, err = worldapi.NewWorldController(worldService)
	if err != nil {
		return fmt.Errorf("creating world controller: %w", err)
	}
	appLogger.Info("World controller initialized")
	return nil
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() error {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		return fmt.Errorf("creating auth service: %w", err)
	}
	appLogger.Info("Auth service initialized")
	return nil
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{authController, worldController},
		AuthorizationMiddleware: identity.Authorize(jwtTokenizer),
	})
	appLogger.Info("Router initialized")
}

// run wires every dependency and serves until the router stops. Deferred
// cleanup always runs before run returns.
func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	config.Envs = config.Load()

	if err := initTelemetry(ctx); err != nil {
		return err
	}
	defer func() {
		if shutdownTelemetry != nil {
			_ = shutdownTelemetry(context.Background())
		}
	}()

	if err := initMongo(ctx); err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := initRedis(ctx); err != nil {
		return err
	}
	defer redisClient.Close()

	steps := []func() error{
		func() error { return initUserRepo(ctx) },
		initWorldStats,
		initWorldService,
		initWorldController,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	initJWTTokenizer()
	if err := initAuthService(); err != nil {
		return err
	}
	initAuthController()
	initRouter()

	if err := router.Run(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	if err := run(); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}
