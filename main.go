package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/bp-predictor/bp-ui/auth"
	"github.com/bp-predictor/bp-ui/handler"
	"github.com/bp-predictor/bp-ui/predictor"
	"github.com/bp-predictor/bp-ui/router"
	"github.com/bp-predictor/bp-ui/store"
	"github.com/bp-predictor/bp-ui/store/jsondb"
	"github.com/bp-predictor/bp-ui/store/memdb"
	"github.com/bp-predictor/bp-ui/store/mysqldb"
	"github.com/bp-predictor/bp-ui/util"
)

var (
	// command-line banner information
	appVersion = "development"
	gitCommit  = "N/A"
	buildTime  = time.Now().UTC().Format("01-02-2006 15:04:05")
	// configuration variables
	flagBindAddress   string = util.DefaultBindAddress
	flagSessionSecret string
	flagSecureCookie  bool
	flagModelPath     string = util.DefaultModelPath
	flagDBType        string = util.DefaultDBType
	flagDBPath        string = util.DefaultDBPath
	flagHashAlgorithm string = util.DefaultHashAlgorithm
	flagLabelMode     string = util.DefaultLabelMode
	flagMySQLHost     string = "127.0.0.1"
	flagMySQLPort     int    = util.DefaultMySQLPort
	flagMySQLUser     string
	flagMySQLPassword string
	flagMySQLDatabase string = "bp_predictor"
	flagMySQLTLS      string = util.DefaultMySQLTLS
)

//go:embed templates/*
var embeddedTemplates embed.FS

func init() {
	// a missing .env file is fine, real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Cannot load .env file:", err)
	}

	// command-line flags and env variables
	flag.StringVar(&flagBindAddress, "bind-address", util.LookupEnvOrString(util.BindAddressEnvVar, flagBindAddress), "Address:Port to which the app will be bound.")
	flag.StringVar(&flagSessionSecret, "session-secret", util.LookupEnvOrString(util.SessionSecretEnvVar, flagSessionSecret), "The key used to sign session cookies. Random when empty.")
	flag.BoolVar(&flagSecureCookie, "secure-cookie", util.LookupEnvOrBool(util.SecureCookieEnvVar, flagSecureCookie), "Only send session cookies over HTTPS.")
	flag.StringVar(&flagModelPath, "model", util.LookupEnvOrString(util.ModelPathEnvVar, flagModelPath), "Path to the trained model file.")
	flag.StringVar(&flagDBType, "db-type", util.LookupEnvOrString(util.DBTypeEnvVar, flagDBType), "User store: memory, jsondb or mysql.")
	flag.StringVar(&flagDBPath, "db-path", util.LookupEnvOrString(util.DBPathEnvVar, flagDBPath), "Directory of the jsondb user store.")
	flag.StringVar(&flagHashAlgorithm, "hash-algorithm", util.LookupEnvOrString(util.HashAlgorithmEnvVar, flagHashAlgorithm), "Password digest: sha256 or bcrypt.")
	flag.StringVar(&flagLabelMode, "label-mode", util.LookupEnvOrString(util.LabelModeEnvVar, flagLabelMode), "Score to label mapping: exact or nearest.")
	flag.StringVar(&flagMySQLHost, "mysql-host", util.LookupEnvOrString(util.MySQLHostEnvVar, flagMySQLHost), "MySQL host.")
	flag.IntVar(&flagMySQLPort, "mysql-port", util.LookupEnvOrInt(util.MySQLPortEnvVar, flagMySQLPort), "MySQL port.")
	flag.StringVar(&flagMySQLUser, "mysql-user", util.LookupEnvOrString(util.MySQLUserEnvVar, flagMySQLUser), "MySQL user.")
	flag.StringVar(&flagMySQLPassword, "mysql-password", util.LookupEnvOrString(util.MySQLPasswordEnvVar, flagMySQLPassword), "MySQL password.")
	flag.StringVar(&flagMySQLDatabase, "mysql-database", util.LookupEnvOrString(util.MySQLDatabaseEnvVar, flagMySQLDatabase), "MySQL database name.")
	flag.StringVar(&flagMySQLTLS, "mysql-tls", util.LookupEnvOrString(util.MySQLTLSEnvVar, flagMySQLTLS), "MySQL TLS mode (true, false, skip-verify, preferred).")
	flag.Parse()

	// update runtime config
	util.BindAddress = flagBindAddress
	util.SessionSecret = []byte(flagSessionSecret)
	util.SecureCookie = flagSecureCookie
	util.ModelPath = flagModelPath
	util.DBType = flagDBType
	util.DBPath = flagDBPath
	util.HashAlgorithm = flagHashAlgorithm
	util.LabelMode = flagLabelMode
	util.MySQLHost = flagMySQLHost
	util.MySQLPort = flagMySQLPort
	util.MySQLUser = flagMySQLUser
	util.MySQLPassword = flagMySQLPassword
	util.MySQLDatabase = flagMySQLDatabase
	util.MySQLTLS = flagMySQLTLS
	util.DefaultUsername = util.LookupEnvOrString(util.UsernameEnvVar, util.DefaultAdminUsername)
	util.DefaultPassword = util.LookupEnvOrString(util.PasswordEnvVar, util.DefaultAdminPassword)

	if lvl, err := util.ParseLogLevel(util.LookupEnvOrString(util.LogLevel, "INFO")); err == nil {
		log.SetLevel(lvl)
	}

	if len(util.SessionSecret) == 0 {
		util.SessionSecret = securecookie.GenerateRandomKey(32)
	}

	// print app information
	fmt.Println("Blood Pressure Predictor")
	fmt.Println("App Version\t:", appVersion)
	fmt.Println("Git Commit\t:", gitCommit)
	fmt.Println("Build Time\t:", buildTime)
	fmt.Println("Bind address\t:", util.BindAddress)
	fmt.Println("Model\t\t:", util.ModelPath)
	fmt.Println("User store\t:", util.DBType)
	fmt.Println("Hash algorithm\t:", util.HashAlgorithm)
	fmt.Println("Label mode\t:", util.LabelMode)
}

func main() {
	// the app cannot serve predictions without a model
	regressor, err := predictor.Load(util.ModelPath)
	if err != nil {
		log.Fatal("Cannot load model: ", err)
	}
	labeler, err := predictor.LabelerFor(util.LabelMode)
	if err != nil {
		log.Fatal(err)
	}
	pipeline := predictor.NewPipeline(regressor, labeler)

	db, err := newStore(util.DBType)
	if err != nil {
		log.Fatal("Cannot open user store: ", err)
	}
	if err := db.Init(); err != nil {
		log.Fatal("Cannot init user store: ", err)
	}

	hasher, err := util.NewHasher(util.HashAlgorithm)
	if err != nil {
		log.Fatal(err)
	}
	gate := auth.NewGate(db, hasher)
	if err := gate.Seed(util.DefaultUsername, util.DefaultPassword); err != nil {
		log.Fatal("Cannot create default user: ", err)
	}
	if users, err := db.GetUsers(); err == nil {
		log.Infof("User store has %d account(s)", len(users))
	}

	// set app extra data
	extraData := make(map[string]string)
	extraData["appVersion"] = appVersion

	tmplDir, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		log.Fatal(err)
	}

	// register routes
	app := router.New(tmplDir, extraData, util.SessionSecret)

	app.GET("/", handler.PredictPage(), handler.ValidSession)
	app.GET("/login", handler.LoginPage())
	app.POST("/login", handler.Login(gate))
	app.POST("/signup", handler.Signup(gate))
	app.GET("/logout", handler.Logout(gate), handler.ValidSession)
	app.POST("/predict", handler.Predict(pipeline), handler.ValidSession)
	app.GET("/api/fields", handler.GetFields(), handler.ValidSession)
	app.POST("/api/predict", handler.APIPredict(pipeline), handler.ValidSession, handler.ContentTypeJson)

	app.Logger.Fatal(app.Start(util.BindAddress))
}

func newStore(dbType string) (store.IStore, error) {
	switch dbType {
	case "", "memory":
		return memdb.New(), nil
	case "jsondb":
		return jsondb.New(util.DBPath)
	case "mysql":
		return mysqldb.New(util.MySQLUser, util.MySQLPassword, util.MySQLHost, util.MySQLPort, util.MySQLDatabase, util.MySQLTLS)
	default:
		return nil, fmt.Errorf("unknown user store type %q", dbType)
	}
}
