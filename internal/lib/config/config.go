package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HttpServer `yaml:"http_server" env-required:"true"`

	FrontendURL string `yaml:"frontend_url" env:"FRONTEND_URL" env-required:"true"`
	BackendURL  string `yaml:"backend_url" env:"BACKEND_URL" env-required:"true"`

	Cookie  Cookie  `yaml:"cookie"`
	Session Session `yaml:"session"`
	GitHub  GitHub  `yaml:"github"`
	Chain   Chain   `yaml:"chain"`
	Scoring Scoring `yaml:"scoring"`
}

type HttpServer struct {
	Address      string        `yaml:"address" env-default:"localhost:8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Cookie struct {
	Name   string        `yaml:"name" env:"COOKIE_NAME" env-default:"devcred_session"`
	Domain string        `yaml:"domain" env:"COOKIE_DOMAIN" env-default:"localhost"`
	Secure bool          `yaml:"secure" env:"COOKIE_SECURE" env-default:"true"`
	MaxAge time.Duration `yaml:"max_age" env-default:"24h"`
}

type Session struct {
	Secret string `yaml:"secret" env:"SESSION_SECRET" env-required:"true"`
}

type GitHub struct {
	ClientID     string `yaml:"client_id" env:"GITHUB_CLIENT_ID" env-required:"true"`
	ClientSecret string `yaml:"client_secret" env:"GITHUB_CLIENT_SECRET" env-required:"true"`
	Scopes       string `yaml:"scopes" env:"GITHUB_SCOPES" env-default:"read:user user:email"`
	GraphQLURL   string `yaml:"graphql_url" env-default:"https://api.github.com/graphql"`

	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type Chain struct {
	RPCHttpURL  string        `yaml:"rpc_http_url" env:"RPC_HTTP_URL" env-required:"true"`
	ERC20List   []string      `yaml:"erc20_list" env:"ERC20_LIST" env-separator:","`
	CallTimeout time.Duration `yaml:"call_timeout" env-default:"10s"`

	AlchemyBaseURL string `yaml:"alchemy_base_url" env-default:"https://eth-mainnet.g.alchemy.com"`
	AlchemyAPIKey  string `yaml:"alchemy_api_key" env:"ALCHEMY_API_KEY"`
	SnapshotURL    string `yaml:"snapshot_url" env-default:"https://hub.snapshot.org/graphql"`
}

type Scoring struct {
	URL     string        `yaml:"url" env:"SCORING_URL"`
	Timeout time.Duration `yaml:"timeout" env-default:"15s"`
}

// MustLoad panics if config can not be found.
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is required")
	}

	if _, err := os.Stat(configPath); err != nil {
		panic("config file does not exist:" + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from cmd flag or environment variable.
// flag > env > default.
// default = "".
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "Path to the configuration file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
