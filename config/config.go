package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "STOREFRONT_CONFIG_FILE"
	envPrefix         = "STOREFRONT"
	dotEnvFile        = ".env"
)

type httpServer struct {
	Addr    string        `mapstructure:"addr"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// backend selects the persistence gateway: url and key both set means SQL,
// otherwise local means in-memory, otherwise every call fails.
type backend struct {
	URL   string `mapstructure:"url"`
	Key   string `mapstructure:"key"`
	Local bool   `mapstructure:"local"`
}

type session struct {
	TTL           time.Duration `mapstructure:"ttl"`
	LocalKey      string        `mapstructure:"local_key"`
	MaxFailures   int           `mapstructure:"max_failures"`
	FailureWindow time.Duration `mapstructure:"failure_window"`
}

type clients struct {
	IdleTTL    time.Duration `mapstructure:"idle_ttl"`
	SweepEvery time.Duration `mapstructure:"sweep_every"`
}

type delays struct {
	Checkout   time.Duration `mapstructure:"checkout"`
	Account    time.Duration `mapstructure:"account"`
	Review     time.Duration `mapstructure:"review"`
	CloseReset time.Duration `mapstructure:"close_reset"`
}

type redis struct {
	Addr string `mapstructure:"addr"`
}

type topics struct {
	OrdersPlaced string `mapstructure:"orders_placed"`
}

type broker struct {
	SeedBrokers        []string         `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string         `mapstructure:"schema_registry_urls"`
	Topics             topics           `mapstructure:"topics"`
	TLS                adapter.TLSFiles `mapstructure:"tls"`
}

type Config struct {
	LogLevel   slog.Level `mapstructure:"log_level"`
	HTTPServer httpServer `mapstructure:"http_server"`
	Backend    backend    `mapstructure:"backend"`
	Session    session    `mapstructure:"session"`
	Clients    clients    `mapstructure:"clients"`
	Delays     delays     `mapstructure:"delays"`
	Redis      redis      `mapstructure:"redis"`
	Broker     broker     `mapstructure:"broker"`
}

func (c Config) SQLConfigured() bool {
	return c.Backend.URL != "" && c.Backend.Key != ""
}

func (c Config) BrokerConfigured() bool {
	return len(c.Broker.SeedBrokers) != 0
}

func Load() Config {
	_ = godotenv.Load(dotEnvFile)

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(getConfigFilepath())
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		die(err)
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	))
	if err != nil {
		die(err)
	}

	return cfg
}

// setDefaults also registers every key, so AutomaticEnv can override keys
// the config file omits.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server.addr", ":8080")
	v.SetDefault("http_server.timeout", 10*time.Second)
	v.SetDefault("backend.url", "")
	v.SetDefault("backend.key", "")
	v.SetDefault("backend.local", false)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.local_key", "storefront-local")
	v.SetDefault("session.max_failures", 5)
	v.SetDefault("session.failure_window", 15*time.Minute)
	v.SetDefault("clients.idle_ttl", 2*time.Hour)
	v.SetDefault("clients.sweep_every", 5*time.Minute)
	v.SetDefault("delays.checkout", 2*time.Second)
	v.SetDefault("delays.account", 800*time.Millisecond)
	v.SetDefault("delays.review", 600*time.Millisecond)
	v.SetDefault("delays.close_reset", 300*time.Millisecond)
	v.SetDefault("redis.addr", "")
	v.SetDefault("broker.seed_brokers", []string{})
	v.SetDefault("broker.schema_registry_urls", []string{})
	v.SetDefault("broker.topics.orders_placed", "orders.placed")
	v.SetDefault("broker.tls.ca_file", "")
	v.SetDefault("broker.tls.cert_file", "")
	v.SetDefault("broker.tls.key_file", "")
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	HTTPServerTimeout=%s

	Backend:
	URL=%q
	Key=%s
	Local=%t

	Session:
	TTL=%s
	MaxFailures=%d
	FailureWindow=%s
	RedisAddr=%q

	Delays:
	Checkout=%s
	Account=%s
	Review=%s
	CloseReset=%s

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	TLS=%t
	Topics:
		OrdersPlaced=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServer.Addr,
		c.HTTPServer.Timeout,
		redactURL(c.Backend.URL),
		mask(c.Backend.Key),
		c.Backend.Local,
		c.Session.TTL,
		c.Session.MaxFailures,
		c.Session.FailureWindow,
		c.Redis.Addr,
		c.Delays.Checkout,
		c.Delays.Account,
		c.Delays.Review,
		c.Delays.CloseReset,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		!c.Broker.TLS.Empty(),
		c.Broker.Topics.OrdersPlaced,
	)
}

func mask(secret string) string {
	if secret == "" {
		return `""`
	}
	return "***"
}

// redactURL drops the userinfo part of a connection url.
func redactURL(u string) string {
	scheme, rest, ok := strings.Cut(u, "://")
	if !ok {
		return u
	}
	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return u
	}
	return scheme + "://***@" + rest[at+1:]
}
