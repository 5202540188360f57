package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Ecommerce Ecommerce `mapstructure:",squash"`
	Geocoder  Geocoder  `mapstructure:",squash"`
	Map       Map       `mapstructure:",squash"`
	KeepAlive KeepAlive `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port" validate:"required"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	Title     string `mapstructure:"dashboard_title"`
	StaticDir string `mapstructure:"static_dir"`
}

// Ecommerce configura a API externa que entrega as métricas já agregadas
type Ecommerce struct {
	URL             string        `mapstructure:"ecommerce_api_url" validate:"required,url"`
	Timeout         time.Duration `mapstructure:"ecommerce_api_timeout"`
	BreakerFailures uint32        `mapstructure:"ecommerce_breaker_failures" validate:"gt=0"`
	BreakerTimeout  time.Duration `mapstructure:"ecommerce_breaker_timeout"`
}

// Geocoder configura o serviço de geocodificação (Nominatim)
type Geocoder struct {
	URL           string        `mapstructure:"geocoder_url" validate:"required,url"`
	UserAgent     string        `mapstructure:"geocoder_user_agent" validate:"required"`
	Timeout       time.Duration `mapstructure:"geocoder_timeout"`
	Limit         int           `mapstructure:"geocode_limit" validate:"gt=0"`
	RatePerSecond float64       `mapstructure:"geocoder_rate_per_second" validate:"gte=0"`
}

type Map struct {
	CenterLat     float64 `mapstructure:"map_center_lat" validate:"gte=-90,lte=90"`
	CenterLon     float64 `mapstructure:"map_center_lon" validate:"gte=-180,lte=180"`
	Zoom          int     `mapstructure:"map_zoom" validate:"gte=0,ltefield=MaxZoom"`
	TileURL       string  `mapstructure:"map_tile_url" validate:"required"`
	MaxZoom       int     `mapstructure:"map_max_zoom" validate:"gte=0"`
	MarkerIconURL string  `mapstructure:"map_marker_icon_url"`
}

type KeepAlive struct {
	CronSchedule string `mapstructure:"keepalive_cron" validate:"required_if=Enabled true"`
	Enabled      bool   `mapstructure:"keepalive_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("DASHBOARD_TITLE", "E-Commerce Dashboard")
	viper.SetDefault("STATIC_DIR", "web/static") // Servido em /icon/ para o ícone dos marcadores

	viper.SetDefault("ECOMMERCE_API_URL", "https://e-com-dashboard-backend.onrender.com/api")
	viper.SetDefault("ECOMMERCE_API_TIMEOUT", "30s")
	viper.SetDefault("ECOMMERCE_BREAKER_FAILURES", 5)    // Falhas consecutivas até abrir o circuito
	viper.SetDefault("ECOMMERCE_BREAKER_TIMEOUT", "30s") // Tempo com o circuito aberto

	viper.SetDefault("GEOCODER_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "ecom-dashboard/1.0")
	viper.SetDefault("GEOCODER_TIMEOUT", "15s")
	viper.SetDefault("GEOCODE_LIMIT", 8) // Cota do geocodificador: no máximo 8 cidades por montagem
	viper.SetDefault("GEOCODER_RATE_PER_SECOND", 8)

	viper.SetDefault("MAP_CENTER_LAT", 20.5937) // Centro da Índia
	viper.SetDefault("MAP_CENTER_LON", 78.9629)
	viper.SetDefault("MAP_ZOOM", 5)
	viper.SetDefault("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	viper.SetDefault("MAP_MAX_ZOOM", 19)
	viper.SetDefault("MAP_MARKER_ICON_URL", "/icon/image.png")

	viper.SetDefault("KEEPALIVE_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("KEEPALIVE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Ecommerce.URL = strings.TrimRight(config.Ecommerce.URL, "/")
	config.Geocoder.URL = strings.TrimRight(config.Geocoder.URL, "/")

	return config, nil
}

var validate = newValidator()

// newValidator usa o nome da variável de ambiente nas mensagens de erro
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" {
			return field.Name
		}
		return strings.ToUpper(name)
	})
	return v
}

// Validate verifica os valores que impedem o painel de funcionar
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, validationMessage(fe))
	}

	return fmt.Errorf("config: %s", strings.Join(messages, "; "))
}

func validationMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s é obrigatória", field)
	case "url":
		return fmt.Sprintf("%s deve ser uma URL válida, recebido %q", field, fe.Value())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s, recebido %v", field, fe.Param(), fe.Value())
	case "ltefield":
		return fmt.Sprintf("%s deve ser menor ou igual a MAP_MAX_ZOOM, recebido %v", field, fe.Value())
	default:
		return fmt.Sprintf("%s fora do intervalo permitido (%s=%s): %v", field, fe.Tag(), fe.Param(), fe.Value())
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
