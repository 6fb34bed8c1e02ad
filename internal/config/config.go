package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	RecipeAPIURL  string
	RecipeAPIKey  string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("GROCERY_SHOP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:          addr,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		RecipeAPIURL:  os.Getenv("RECIPE_API_URL"),
		RecipeAPIKey:  os.Getenv("RECIPE_API_KEY"),
	}
}
