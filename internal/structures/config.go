package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type YouTubeConfig struct {
	APIKey      string            `yaml:"apiKey"`
	BaseURL     string            `yaml:"baseUrl" validate:"required|fullUrl"`
	PlaylistURL string            `yaml:"playlistUrl"`
	Playlists   map[string]string `yaml:"playlists"`
	Timeout     time.Duration     `yaml:"timeout"`
}

type PlatformConfig struct {
	Enabled   bool    `yaml:"enabled"`
	BaseURL   string  `yaml:"baseUrl"`
	PastLimit int     `yaml:"pastLimit"`
	RPS       float64 `yaml:"rps"`
}

type PlatformsConfig struct {
	Codeforces PlatformConfig `yaml:"codeforces"`
	Codechef   PlatformConfig `yaml:"codechef"`
	Leetcode   PlatformConfig `yaml:"leetcode"`
	Timeout    time.Duration  `yaml:"timeout"`
}

const (
	PolicyAbort   = "abort"
	PolicyDegrade = "degrade"
)

type AggregationConfig struct {
	Policy  string        `yaml:"policy" validate:"required|in:abort,degrade"`
	Timeout time.Duration `yaml:"timeout"`
}

type StoreConfig struct {
	Driver   string `yaml:"driver" validate:"required|in:file,sqlite,redis,postgres"`
	Path     string `yaml:"path"`
	DSN      string `yaml:"dsn"`
	RedisURL string `yaml:"redisUrl"`
	Prefix   string `yaml:"prefix"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server            `yaml:"webServer"`
	Logger      LoggerConfig      `yaml:"logger"`
	YouTube     YouTubeConfig     `yaml:"youtube"`
	Platforms   PlatformsConfig   `yaml:"platforms"`
	Aggregation AggregationConfig `yaml:"aggregation"`
	Store       StoreConfig       `yaml:"store"`
	Cache       CacheConfig       `yaml:"cache"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}
