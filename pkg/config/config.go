package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	GCP           GCPConfig
	GCS           GCSConfig
	Cart          CartConfig
	Shipping      ShippingConfig
	Checkout      CheckoutConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HIDROPONIK_APP_ENV" required:"true"`
	Port         string `envconfig:"HIDROPONIK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HIDROPONIK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HIDROPONIK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"HIDROPONIK_DB_DSN"`
	Driver string `envconfig:"HIDROPONIK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"HIDROPONIK_DB_HOST"`
	LegacyPort     int    `envconfig:"HIDROPONIK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"HIDROPONIK_DB_USER"`
	LegacyPassword string `envconfig:"HIDROPONIK_DB_PASSWORD"`
	LegacyName     string `envconfig:"HIDROPONIK_DB_NAME"`
	LegacySSLMode  string `envconfig:"HIDROPONIK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"HIDROPONIK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HIDROPONIK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HIDROPONIK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HIDROPONIK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HIDROPONIK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"HIDROPONIK_REDIS_ADDR"`
	Password     string        `envconfig:"HIDROPONIK_REDIS_PASSWORD"`
	DB           int           `envconfig:"HIDROPONIK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HIDROPONIK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HIDROPONIK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HIDROPONIK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HIDROPONIK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HIDROPONIK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"HIDROPONIK_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"HIDROPONIK_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"HIDROPONIK_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"HIDROPONIK_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"HIDROPONIK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"HIDROPONIK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"HIDROPONIK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"HIDROPONIK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"HIDROPONIK_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"HIDROPONIK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"HIDROPONIK_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"HIDROPONIK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"HIDROPONIK_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"HIDROPONIK_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"HIDROPONIK_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"HIDROPONIK_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName  string `envconfig:"HIDROPONIK_GCS_BUCKET_NAME" required:"true"`
	ProofPrefix string `envconfig:"HIDROPONIK_GCS_PROOF_PREFIX" default:"payment_proof"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"HIDROPONIK_CART_TTL" default:"24h"`
}

type ShippingConfig struct {
	RateAPIBaseURL string        `envconfig:"HIDROPONIK_RATE_API_BASE_URL" default:"https://rajaongkir.komerce.id/api/v1"`
	RateAPIKey     string        `envconfig:"HIDROPONIK_RATE_API_KEY"`
	RateAPITimeout time.Duration `envconfig:"HIDROPONIK_RATE_API_TIMEOUT" default:"10s"`
	OriginCityID   string        `envconfig:"HIDROPONIK_SHIPPING_ORIGIN_CITY_ID" default:"155"`
	CacheTTL       time.Duration `envconfig:"HIDROPONIK_SHIPPING_CACHE_TTL" default:"24h"`
}

type CheckoutConfig struct {
	OwnDeliveryFlatFee   int64 `envconfig:"HIDROPONIK_OWN_DELIVERY_FLAT_FEE" default:"20000"`
	OwnDeliveryFreeAbove int   `envconfig:"HIDROPONIK_OWN_DELIVERY_FREE_ABOVE_KG" default:"10"`
	MaxProofUploadMB     int   `envconfig:"HIDROPONIK_MAX_PROOF_UPLOAD_MB" default:"10"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"HIDROPONIK_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
