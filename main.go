package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/micromouse-api/api"
	"github.com/beka-birhanu/micromouse-api/api/auth"
	debugapi "github.com/beka-birhanu/micromouse-api/api/debug"
	api_i "github.com/beka-birhanu/micromouse-api/api/i"
	mouseapi "github.com/beka-birhanu/micromouse-api/api/mouse"
	"github.com/beka-birhanu/micromouse-api/config"
	"github.com/beka-birhanu/micromouse-api/infrastruture/store"
	"github.com/beka-birhanu/micromouse-api/infrastruture/token"
	"github.com/beka-birhanu/micromouse-api/logger"
	"github.com/beka-birhanu/micromouse-api/service"
	"github.com/beka-birhanu/micromouse-api/service/i"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	appLogger       i.Logger
	sessionStore    i.SessionStore
	turnService     *service.TurnService
	jwtTokenizer    i.Tokenizer
	mouseController api_i.Controller
	debugController api_i.Controller
	router          *api.Router
)

func initStore(ctx context.Context) {
	storeLogger, err := logger.New("STORE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating store logger: %v", err))
		os.Exit(1)
	}

	switch config.Envs.SessionStore {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
			os.Exit(1)
		}
		sessionStore, err = store.NewRedisStore(client, config.Envs.SessionTTLSeconds)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating redis session store: %v", err))
			os.Exit(1)
		}
		storeLogger.Info("Redis session store initialized")
	default:
		sessionStore = store.NewMemoryStore(time.Duration(config.Envs.SessionTTLSeconds) * time.Second)
		storeLogger.Info("In-memory session store initialized")
	}
}

func initTurnService() {
	turnLogger, err := logger.New("TURN", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating turn service logger: %v", err))
		os.Exit(1)
	}

	turnService, err = service.NewTurnService(sessionStore, turnLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating turn service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Turn service initialized")
}

func initJWTTokenizer() {
	if config.Envs.JWTSecret == "" {
		appLogger.Warning("JWT_SECRET not set; debug routes are disabled")
		return
	}
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initControllers() {
	mouseLogger, err := logger.New("MOUSE", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating mouse controller logger: %v", err))
		os.Exit(1)
	}

	mouseController, err = mouseapi.NewMouseController(turnService, mouseLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating mouse controller: %v", err))
		os.Exit(1)
	}

	debugController, err = debugapi.NewDebugController(turnService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating debug controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter() {
	authorization := auth.Disabled()
	if jwtTokenizer != nil {
		authorization = auth.Authorize(jwtTokenizer)
	}

	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{mouseController, debugController},
		AuthorizationMiddleware: authorization,
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initStore(ctx)
	initTurnService()
	initJWTTokenizer()
	initControllers()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
