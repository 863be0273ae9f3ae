package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath           = "."
	defaultStorageDriver  = StorageDriverFile
	defaultStorageDir     = "./data"
	defaultCurrencySymbol = "ل.س"
	defaultThousand       = ","
	defaultSessionCookie  = "sf_session"
	defaultAdminUsername  = "Ali"
	defaultAdminTokenTTL  = 12 * time.Hour
)

// Storage drivers for the local backend.
const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the engine behind the local backend
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Postgres is only read when storage.driver is "postgres"
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Admin AdminConfig `json:"admin" yaml:"admin"`

	Session SessionConfig `json:"session" yaml:"session"`

	Currency CurrencyConfig `json:"currency" yaml:"currency"`

	// Firebase configuration for the remote catalog and new-order pushes
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for order confirmation codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the local key-value engine
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	File   struct {
		Dir string `json:"dir" yaml:"dir"`
	} `json:"file" yaml:"file"`
	Redis struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
	} `json:"redis" yaml:"redis"`
}

// AdminConfig holds the fallback admin credential used until one is stored
type AdminConfig struct {
	Username     string        `json:"username" yaml:"username"`
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	TokenTTL     time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// SessionConfig defines the signed session cookie
type SessionConfig struct {
	CookieName string `json:"cookieName" yaml:"cookieName"`
	HashKey    string `json:"hashKey" yaml:"hashKey"`
	BlockKey   string `json:"blockKey" yaml:"blockKey"`
	MaxAge     int    `json:"maxAge" yaml:"maxAge"`
	Secure     bool   `json:"secure" yaml:"secure"`
}

// CurrencyConfig defines how amounts are rendered
type CurrencyConfig struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Thousand string `json:"thousand" yaml:"thousand"`
}

// FirebaseConfig defines the Firebase project backing the remote store
type FirebaseConfig struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// OrdersTopic is the FCM topic admins subscribe to; empty disables pushes
	OrdersTopic string `json:"ordersTopic" yaml:"ordersTopic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines where order events are published
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project and topic (google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka brokers and topic (kafka provider)
	KafkaBrokers []string `json:"kafkaBrokers" yaml:"kafkaBrokers"`
	KafkaTopic   string   `json:"kafkaTopic" yaml:"kafkaTopic"`
}

// RemoteEnabled reports whether the Firestore backend should be used.
func (c *Config) RemoteEnabled() bool {
	return c.Firebase != nil && c.Firebase.Enabled
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

	// Example: STORAGE_REDIS_ADDR -> storage.redis.addr, SECRETKEY_ACCESS -> secretKey.access
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
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Storage.Driver) == "" {
		c.Storage.Driver = defaultStorageDriver
	}
	if strings.TrimSpace(c.Storage.File.Dir) == "" {
		c.Storage.File.Dir = defaultStorageDir
	}
	if c.Currency.Symbol == "" {
		c.Currency.Symbol = defaultCurrencySymbol
	}
	if c.Currency.Thousand == "" {
		c.Currency.Thousand = defaultThousand
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = defaultSessionCookie
	}
	if c.Admin.Username == "" {
		c.Admin.Username = defaultAdminUsername
	}
	if c.Admin.TokenTTL <= 0 {
		c.Admin.TokenTTL = defaultAdminTokenTTL
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
