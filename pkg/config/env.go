package config

// EnvPrefix is passed to envconfig; individual fields carry fully
// qualified envconfig tags so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv     = "HIDROPONIK_APP_ENV"
	EnvPort       = "HIDROPONIK_APP_PORT"
	EnvDBDSN      = "HIDROPONIK_DB_DSN"
	EnvDBHost     = "HIDROPONIK_DB_HOST"
	EnvDBUser     = "HIDROPONIK_DB_USER"
	EnvDBName     = "HIDROPONIK_DB_NAME"
	EnvRedisURL   = "HIDROPONIK_REDIS_URL"
	EnvJWTSecret  = "HIDROPONIK_JWT_SECRET"
	EnvJWTIssuer  = "HIDROPONIK_JWT_ISSUER"
	EnvJWTExpMins = "HIDROPONIK_JWT_EXPIRATION_MINUTES"
	EnvGCPProject = "HIDROPONIK_GCP_PROJECT_ID"
	EnvGCSBucket  = "HIDROPONIK_GCS_BUCKET_NAME"
	EnvRateAPIKey = "HIDROPONIK_RATE_API_KEY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
