package recipecatalog

// CatalogConfig configures where the catalog is read from and how it is served.
type CatalogConfig struct {
	RecipesPath     string `env:"RECIPES_PATH,default=artifacts/recipes.json"`
	FavoritesDir    string `env:"FAVORITES_DIR,default=artifacts/state"`
	ListenAddr      string `env:"LISTEN_ADDR,default=:8080"`
	SlackWebhookURL string `env:"SLACK_WEBHOOK_URL"`
	SlackChannel    string `env:"SLACK_CHANNEL,default=#recipes"`
	QueryLogDir     string `env:"QUERY_LOG_DIR"`
	AllowedOrigins  string `env:"CORS_ALLOWED_ORIGINS,default=*"`
}

// S3Config points the catalog at objects in S3 instead of the local filesystem.
type S3Config struct {
	Bucket          string `env:"ARTIFACTS_S3_BUCKET"`
	RecipesKey      string `env:"RECIPES_S3_KEY,default=recipes.json"`
	FavoritesPrefix string `env:"FAVORITES_S3_PREFIX,default=state/"`
}

// Enabled reports whether a bucket was configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}
