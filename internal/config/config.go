package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host        string `envconfig:"WEB_SERVER_HOST" default:""`
	Port        string `envconfig:"WEB_SERVER_PORT" default:"8080"`
	ReadTimeout int    `envconfig:"WEB_SERVER_TIMEOUT" default:"10"`
}

type OpenWeather struct {
	APIKey string `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	URL    string `envconfig:"OPENWEATHER_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	Units  string `envconfig:"OPENWEATHER_UNITS" default:"metric"`

	IconURLTemplate string `envconfig:"ICON_URL_TEMPLATE" default:"https://openweathermap.org/img/wn/%s@2x.png"`

	// FetchTimeout is in seconds; zero leaves the weather call unbounded.
	FetchTimeout int `envconfig:"FETCH_TIMEOUT" default:"0"`
}

type Breaker struct {
	Enabled      bool   `envconfig:"BREAKER_ENABLED" default:"true"`
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Redis struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	DbType   int    `envconfig:"REDIS_DB_TYPE" default:"0"`
	LiveTime int    `envconfig:"REDIS_LIVE_TIME" default:"10"`
}

type Config struct {
	OpenWeather OpenWeather
	Server      Server
	Breaker     Breaker
	Redis       Redis

	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/weather-app.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/weather-app-http.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.OpenWeather.FetchTimeout) * time.Second
}

// CacheLiveTime is in minutes.
func (c *Config) CacheLiveTime() time.Duration {
	return time.Duration(c.Redis.LiveTime) * time.Minute
}

func (c *Config) RedisAddress() string {
	return c.Redis.Host + ":" + c.Redis.Port
}
