package util

// Runtime config
var (
	BindAddress     string
	SessionSecret   []byte
	SecureCookie    bool
	ModelPath       string
	DBType          string
	DBPath          string
	HashAlgorithm   string
	LabelMode       string
	MySQLHost       string
	MySQLPort       int
	MySQLUser       string
	MySQLPassword   string
	MySQLDatabase   string
	MySQLTLS        string
	DefaultUsername string
	DefaultPassword string
)

const (
	DefaultBindAddress   = "0.0.0.0:5000"
	DefaultModelPath     = "bp_model.bin"
	DefaultDataPath      = "data.csv"
	DefaultDBType        = "memory"
	DefaultDBPath        = "./db"
	DefaultHashAlgorithm = "sha256"
	DefaultLabelMode     = "exact"
	DefaultMySQLPort     = 3306
	DefaultMySQLTLS      = "false"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "1234"
	DefaultTestFraction  = 0.2
	DefaultSeed          = 42
	DefaultImputeScope   = "train"
)

const (
	LogLevel            = "LOG_LEVEL"
	BindAddressEnvVar   = "BIND_ADDRESS"
	SessionSecretEnvVar = "SESSION_SECRET"
	SecureCookieEnvVar  = "SESSION_COOKIE_SECURE"
	ModelPathEnvVar     = "MODEL_PATH"
	DataPathEnvVar      = "DATA_PATH"
	DBTypeEnvVar        = "DB_TYPE"
	DBPathEnvVar        = "DB_PATH"
	HashAlgorithmEnvVar = "HASH_ALGORITHM"
	LabelModeEnvVar     = "LABEL_MODE"
	MySQLHostEnvVar     = "MYSQL_HOST"
	MySQLPortEnvVar     = "MYSQL_PORT"
	MySQLUserEnvVar     = "MYSQL_USER"
	MySQLPasswordEnvVar = "MYSQL_PASSWORD"
	MySQLDatabaseEnvVar = "MYSQL_DATABASE"
	MySQLTLSEnvVar      = "MYSQL_TLS"
	UsernameEnvVar      = "DEFAULT_USERNAME"
	PasswordEnvVar      = "DEFAULT_PASSWORD"
	TestFractionEnvVar  = "TEST_FRACTION"
	SeedEnvVar          = "SEED"
	ImputeScopeEnvVar   = "IMPUTE_SCOPE"
)
