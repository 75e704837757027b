package main

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/docs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", configuration.Host, configuration.Port)

	// Initialize Gin router
	engine := router.SetupRouter(db, configuration)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(engine.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		log.WithError(err).Error("Fatal startup error")
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
// An explicit LOG_LEVEL other than the default wins over the environment
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	switch conf.Environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if conf.LogLevel != "" && conf.LogLevel != "info" {
		level, err := log.ParseLevel(conf.LogLevel)
		if err != nil {
			log.WithField("log_level", conf.LogLevel).Warn("Invalid LOG_LEVEL, keeping environment default")
			return
		}
		log.SetLevel(level)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the database, migrates the schema and seeds it when empty
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.DatabaseConfig())
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedData {
		_, err := database.SeedIfEmpty(db)
		checkPanicErr(err)
	}
	return db
}
