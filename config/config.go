package config

import (
	"os"
	"path/filepath"
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
	defaultGeocodeTimeout     = 5 * time.Second
	defaultGeocodeMaxRetries  = 2
	defaultGeocodeRetryWait   = 200 * time.Millisecond
	defaultNotifyTimeout      = 5 * time.Second
	defaultGeocodeCacheTTL    = 24 * time.Hour
)

// Geocode policy modes.
const (
	GeocodePolicySoft   = "soft"
	GeocodePolicyStrict = "strict"
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migration controls schema management at startup
	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	// Redis backs the geocode cache; an empty URL disables caching
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Geocode configuration for the postal code lookup
	Geocode *GeocodeConfig `json:"geocode" yaml:"geocode"`

	// Validation overrides the field validator lists
	Validation *ValidationConfig `json:"validation" yaml:"validation"`

	// Notification configuration for registration confirmations
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Auth protects the mutation routes
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Metrics exposes the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationConfig defines schema migration behaviour
type MigrationConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// RedisConfig defines the Redis connection used for caching
type RedisConfig struct {
	URL string `json:"url" yaml:"url"`

	// How long resolved and unresolvable postal codes stay cached
	GeocodeTTL time.Duration `json:"geocodeTtl" yaml:"geocodeTtl"`
}

// GeocodeConfig defines the postal code lookup provider and its failure policy
type GeocodeConfig struct {
	// Provider type: "brasilapi" for the HTTP provider or "static" for a fixed table
	Provider string `json:"provider" yaml:"provider"`

	// Base URL of the HTTP provider
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Timeout bounds a single lookup including retries
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retries after the first attempt
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`

	// RetryWait is the initial backoff interval
	RetryWait time.Duration `json:"retryWait" yaml:"retryWait"`

	// Static maps postal code digits to "lat,lon" for the static provider
	Static map[string]string `json:"static" yaml:"static"`

	Policy GeocodePolicyConfig `json:"policy" yaml:"policy"`
}

// GeocodePolicyConfig names how each operation reacts to a failed lookup.
// "soft" stores the record without coordinates; "strict" rejects it.
type GeocodePolicyConfig struct {
	IndividualCreate   string `json:"individualCreate" yaml:"individualCreate"`
	OrganizationCreate string `json:"organizationCreate" yaml:"organizationCreate"`
	Update             string `json:"update" yaml:"update"`
}

// ValidationConfig overrides the default validator lists; empty keeps the default
type ValidationConfig struct {
	RegionCodes       []string `json:"regionCodes" yaml:"regionCodes"`
	DisposableDomains []string `json:"disposableDomains" yaml:"disposableDomains"`
}

// NotificationConfig defines where registration confirmations are sent
type NotificationConfig struct {
	// Provider type: "http" to call Endpoint or "log" to only log
	Provider string        `json:"provider" yaml:"provider"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// AuthConfig defines bearer token verification for write endpoints
type AuthConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Secret  string `json:"secret" yaml:"secret"`
	Issuer  string `json:"issuer" yaml:"issuer"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the optional sections so consumers never see nil.
func applyDefaults(cfg *Config) {
	if cfg.Migration == nil {
		cfg.Migration = &MigrationConfig{}
	}
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.GeocodeTTL <= 0 {
		cfg.Redis.GeocodeTTL = defaultGeocodeCacheTTL
	}
	if cfg.Geocode == nil {
		cfg.Geocode = &GeocodeConfig{}
	}
	if cfg.Geocode.Timeout <= 0 {
		cfg.Geocode.Timeout = defaultGeocodeTimeout
	}
	if cfg.Geocode.MaxRetries < 0 {
		cfg.Geocode.MaxRetries = 0
	} else if cfg.Geocode.MaxRetries == 0 {
		cfg.Geocode.MaxRetries = defaultGeocodeMaxRetries
	}
	if cfg.Geocode.RetryWait <= 0 {
		cfg.Geocode.RetryWait = defaultGeocodeRetryWait
	}
	cfg.Geocode.Policy = cfg.Geocode.Policy.withDefaults()
	if cfg.Validation == nil {
		cfg.Validation = &ValidationConfig{}
	}
	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.Timeout <= 0 {
		cfg.Notification.Timeout = defaultNotifyTimeout
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

// withDefaults keeps the historical behaviour: individuals tolerate a failed
// lookup on creation, organizations do not, updates always tolerate it.
func (p GeocodePolicyConfig) withDefaults() GeocodePolicyConfig {
	if p.IndividualCreate == "" {
		p.IndividualCreate = GeocodePolicySoft
	}
	if p.OrganizationCreate == "" {
		p.OrganizationCreate = GeocodePolicyStrict
	}
	if p.Update == "" {
		p.Update = GeocodePolicySoft
	}

	return p
}

func (cfg *Config) validate() error {
	for name, mode := range map[string]string{
		"geocode.policy.individualCreate":   cfg.Geocode.Policy.IndividualCreate,
		"geocode.policy.organizationCreate": cfg.Geocode.Policy.OrganizationCreate,
		"geocode.policy.update":             cfg.Geocode.Policy.Update,
	} {
		if mode != GeocodePolicySoft && mode != GeocodePolicyStrict {
			return errors.Errorf("%s must be %q or %q, got %q", name, GeocodePolicySoft, GeocodePolicyStrict, mode)
		}
	}
	if cfg.Auth.Enabled && strings.TrimSpace(cfg.Auth.Secret) == "" {
		return errors.New("auth.secret is required when auth is enabled")
	}

	return nil
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
