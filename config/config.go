package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration with viper
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it. Using default values and environment variables.")
	}

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.host", "localhost")

	viper.SetDefault("telegram.base_url", "https://api.telegram.org")
	viper.SetDefault("telegram.webhook_url", "")

	viper.SetDefault("saavn.api_url", "https://jiosavan-api2.vercel.app/api/search/songs")
	viper.SetDefault("saavn.limit", 10)

	// admin.chat_id gates /stats; 0 means nobody is admin
	viper.SetDefault("admin.chat_id", 0)

	viper.SetDefault("session.capacity", 1024)
	viper.SetDefault("session.select_moves_cursor", true)

	// :memory: keeps counters process-local; set a file path to keep them
	viper.SetDefault("stats.db_path", ":memory:")

	viper.AutomaticEnv()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file: %v", err)
		}
		log.Println("Config file not found, using default values and environment variables")
	} else {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}

	// check for required settings
	requiredVars := []string{"telegram.bot_token"}
	missingVars := []string{}

	for _, v := range requiredVars {
		if !viper.IsSet(v) {
			missingVars = append(missingVars, v)
		}
	}

	if len(missingVars) > 0 {
		log.Fatalf("Required configuration variables not set: %s", strings.Join(missingVars, ", "))
	}
}
