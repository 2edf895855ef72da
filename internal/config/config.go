package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	WooCommerce WooCommerce `mapstructure:",squash"`
	TikTok      TikTok      `mapstructure:",squash"`
	Engine      Engine      `mapstructure:",squash"`
	OrderSync   OrderSync   `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type WooCommerce struct {
	APIURL         string `mapstructure:"wc_api_url"`
	ConsumerKey    string `mapstructure:"wc_consumer_key"`
	ConsumerSecret string `mapstructure:"wc_consumer_secret"`
	PageSize       int    `mapstructure:"wc_page_size"`
}

type TikTok struct {
	ScraperURL string `mapstructure:"tiktok_scraper_url"`
}

// Engine concentra as constantes do motor de análise. Os pesos do score de
// impacto e o amortecimento da previsão são decisões de negócio, não
// estatísticas derivadas; por isso ficam configuráveis.
type Engine struct {
	ConversionWindowDays    int     `mapstructure:"conversion_window_days"`
	ImpactSalesWeight       float64 `mapstructure:"impact_sales_weight"`
	ImpactRevenueWeight     float64 `mapstructure:"impact_revenue_weight"`
	ImpactEngagementWeight  float64 `mapstructure:"impact_engagement_weight"`
	ForecastTrendDamping    float64 `mapstructure:"forecast_trend_damping"`
	ForecastHistoryMonths   int     `mapstructure:"forecast_history_months"`
	MonthFetchMaxConcurrent int     `mapstructure:"month_fetch_max_concurrent"`
}

type OrderSync struct {
	CronSchedule string `mapstructure:"order_sync_cron"`
	Enabled      bool   `mapstructure:"order_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WC_API_URL", "")
	viper.SetDefault("WC_CONSUMER_KEY", "")
	viper.SetDefault("WC_CONSUMER_SECRET", "")
	viper.SetDefault("WC_PAGE_SIZE", 100)

	viper.SetDefault("TIKTOK_SCRAPER_URL", "https://tiktok-scraper-ebon.vercel.app")

	// Constantes do motor; os defaults reproduzem os valores calibrados no dashboard
	viper.SetDefault("CONVERSION_WINDOW_DAYS", 7)
	viper.SetDefault("IMPACT_SALES_WEIGHT", 10.0)
	viper.SetDefault("IMPACT_REVENUE_WEIGHT", 0.1)
	viper.SetDefault("IMPACT_ENGAGEMENT_WEIGHT", 100.0)
	viper.SetDefault("FORECAST_TREND_DAMPING", 0.3)
	viper.SetDefault("FORECAST_HISTORY_MONTHS", 6)
	viper.SetDefault("MONTH_FETCH_MAX_CONCURRENT", 5)

	viper.SetDefault("ORDER_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("ORDER_SYNC_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
