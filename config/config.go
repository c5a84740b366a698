package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDashboardPath      = "/dashboard"

	// EnvProduction enables production-only behaviour such as secure cookies.
	EnvProduction = "production"
)

// Auth defaults. They mirror the behaviour the service has always had and are
// only overridden explicitly through configuration.
const (
	DefaultBcryptCost       = 10
	DefaultCodeTTL          = 5 * time.Minute
	DefaultMaxLoginAttempts = 4
	DefaultLockTTL          = 40 * time.Minute
	DefaultAccessTokenTTL   = time.Hour
	DefaultSweepSchedule    = "@every 1m"
)

// Notifier provider names.
const (
	NotifierProviderLog    = "log"
	NotifierProviderLocal  = "local"
	NotifierProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		DashboardPath      string   `json:"dashboardPath" yaml:"dashboardPath"`
		CORSOrigins        []string `json:"corsOrigins" yaml:"corsOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKey `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Notifier configures how confirmation codes leave the service
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`
}

// SecretKey holds the signing secrets.
type SecretKey struct {
	Access string `json:"access" yaml:"access"`
}

// AuthConfig defines registration, confirmation and login behaviour
type AuthConfig struct {
	BcryptCost       int           `json:"bcryptCost" yaml:"bcryptCost"`
	HashWorkers      int           `json:"hashWorkers" yaml:"hashWorkers"`
	CodeTTL          time.Duration `json:"codeTTL" yaml:"codeTTL"`
	MaxLoginAttempts int           `json:"maxLoginAttempts" yaml:"maxLoginAttempts"`
	LockTTL          time.Duration `json:"lockTTL" yaml:"lockTTL"`
	AccessTokenTTL   time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`

	// SweepSchedule is a cron expression for purging stale in-memory state. Empty disables the sweep.
	SweepSchedule string `json:"sweepSchedule" yaml:"sweepSchedule"`

	// CookieSecure forces the Secure flag on the access_token cookie outside production.
	CookieSecure bool `json:"cookieSecure" yaml:"cookieSecure"`
}

// NotifierConfig defines the confirmation code delivery channel
type NotifierConfig struct {
	// Provider type: "log", "local" or "google"
	Provider string `json:"provider" yaml:"provider"`

	// Local HTTP endpoint receiving push envelopes (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	MaxRetries     uint64        `json:"maxRetries" yaml:"maxRetries"`
	RetryBaseDelay time.Duration `json:"retryBaseDelay" yaml:"retryBaseDelay"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env vars override the file. AUTH_LOCKTTL -> auth.lockTTL
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every unset field with its default value.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.DashboardPath == "" {
		c.HTTP.DashboardPath = defaultDashboardPath
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{SweepSchedule: DefaultSweepSchedule}
	}
	if c.Auth.BcryptCost <= 0 {
		c.Auth.BcryptCost = DefaultBcryptCost
	}
	if c.Auth.HashWorkers <= 0 {
		c.Auth.HashWorkers = runtime.GOMAXPROCS(0)
	}
	if c.Auth.CodeTTL <= 0 {
		c.Auth.CodeTTL = DefaultCodeTTL
	}
	if c.Auth.MaxLoginAttempts <= 0 {
		c.Auth.MaxLoginAttempts = DefaultMaxLoginAttempts
	}
	if c.Auth.LockTTL <= 0 {
		c.Auth.LockTTL = DefaultLockTTL
	}
	if c.Auth.AccessTokenTTL <= 0 {
		c.Auth.AccessTokenTTL = DefaultAccessTokenTTL
	}

	if c.Notifier == nil {
		c.Notifier = &NotifierConfig{}
	}
	if c.Notifier.Provider == "" {
		c.Notifier.Provider = NotifierProviderLog
	}
	if c.Notifier.RetryBaseDelay <= 0 {
		c.Notifier.RetryBaseDelay = 200 * time.Millisecond
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first incomplete index.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
