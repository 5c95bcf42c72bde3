package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/maze-api/api"
	api_i "github.com/beka-birhanu/maze-api/api/i"
	mazeapi "github.com/beka-birhanu/maze-api/api/maze"
	"github.com/beka-birhanu/maze-api/config"
	"github.com/beka-birhanu/maze-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-api/service"
	"github.com/beka-birhanu/maze-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	mazeManager    i.MazeManager
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("Redis ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to redis")
}

func initMazeRepo() {
	var err error
	mazeRepo, err = repo.NewMazeRepo(redisClient, time.Duration(config.Envs.MazeTTLMin)*time.Minute)
	if err != nil {
		appLogger.Printf("Creating maze repository: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze repository initialized")
}

func initMazeService() {
	mazeLogger := log.New(os.Stdout, config.ColorCyan+"[MAZE] "+config.ColorReset, log.LstdFlags)

	var err error
	mazeManager, err = service.NewMazeService(mazeRepo, mazeLogger)
	if err != nil {
		appLogger.Printf("Creating maze service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeManager)
	if err != nil {
		appLogger.Printf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Println("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel() // Ensure the context is always canceled

	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initMazeRepo()
	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("Starting server: %v", err)
		os.Exit(1)
	}
}
