package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/parthoooo/story-teller/pkg/admin-user/pwhash"
	"github.com/parthoooo/story-teller/pkg/db"
	"github.com/parthoooo/story-teller/pkg/filestore"
	emailsending "github.com/parthoooo/story-teller/pkg/messaging/email-sending"
	messagingTypes "github.com/parthoooo/story-teller/pkg/messaging/types"
	smtpclient "github.com/parthoooo/story-teller/pkg/smtp-client"
	"github.com/parthoooo/story-teller/pkg/utils"

	adminUserDB "github.com/parthoooo/story-teller/pkg/db/admin-users"
	messagingDB "github.com/parthoooo/story-teller/pkg/db/messaging"
	submissionDB "github.com/parthoooo/story-teller/pkg/db/submissions"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_SUBMISSION_DB_USERNAME = "SUBMISSION_DB_USERNAME"
	ENV_SUBMISSION_DB_PASSWORD = "SUBMISSION_DB_PASSWORD"
	ENV_ADMIN_USER_DB_USERNAME = "ADMIN_USER_DB_USERNAME"
	ENV_ADMIN_USER_DB_PASSWORD = "ADMIN_USER_DB_PASSWORD"
	ENV_MESSAGING_DB_USERNAME  = "MESSAGING_DB_USERNAME"
	ENV_MESSAGING_DB_PASSWORD  = "MESSAGING_DB_PASSWORD"

	ENV_ADMIN_USER_JWT_SIGN_KEY = "ADMIN_USER_JWT_SIGN_KEY"
)

type StoryApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	// admin user configs
	AdminUserConfig struct {
		PWHashing struct {
			Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
			Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
			Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
		} `json:"pw_hashing" yaml:"pw_hashing"`
		JWTConfig struct {
			SignKey   string `json:"sign_key" yaml:"sign_key"`
			ExpiresIn string `json:"expires_in" yaml:"expires_in"`
		} `json:"jwt_config" yaml:"jwt_config"`
	} `json:"admin_user_config" yaml:"admin_user_config"`

	// DB configs
	DBConfigs struct {
		SubmissionDB db.DBConfigYaml `json:"submission_db" yaml:"submission_db"`
		AdminUserDB  db.DBConfigYaml `json:"admin_user_db" yaml:"admin_user_db"`
		MessagingDB  db.DBConfigYaml `json:"messaging_db" yaml:"messaging_db"`
	} `json:"db_configs" yaml:"db_configs"`

	UploadsDirPath string `json:"uploads_dir_path" yaml:"uploads_dir_path"`

	MessagingConfigs messagingTypes.MessagingConfigs `json:"messaging_configs" yaml:"messaging_configs"`
}

var (
	conf StoryApiConfig

	adminUserJWTExpiresIn time.Duration

	submissionDBService *submissionDB.SubmissionDBService
	adminUserDBService  *adminUserDB.AdminUserDBService
	messagingDBService  *messagingDB.MessagingDBService

	fileStore *filestore.FileStore
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
	)

	// Override secrets from environment variables
	secretsOverride()

	if conf.AdminUserConfig.JWTConfig.SignKey == "" {
		panic("admin user JWT sign key not set")
	}

	adminUserJWTExpiresIn, err = utils.ParseDurationString(conf.AdminUserConfig.JWTConfig.ExpiresIn)
	if err != nil {
		panic("could not parse admin user JWT expiration: " + err.Error())
	}

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// init argon2
	pwhash.InitArgonParams(
		conf.AdminUserConfig.PWHashing.Argon2Memory,
		conf.AdminUserConfig.PWHashing.Argon2Iterations,
		conf.AdminUserConfig.PWHashing.Argon2Parallelism,
	)

	fileStore, err = filestore.New(conf.UploadsDirPath)
	if err != nil {
		panic(err)
	}

	// init message sending config
	initMessageSendingConfig()
}

func secretsOverride() {
	if signKey := os.Getenv(ENV_ADMIN_USER_JWT_SIGN_KEY); signKey != "" {
		conf.AdminUserConfig.JWTConfig.SignKey = signKey
	}

	if dbUsername := os.Getenv(ENV_SUBMISSION_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.SubmissionDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_SUBMISSION_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.SubmissionDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_ADMIN_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.AdminUserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_ADMIN_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.AdminUserDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_MESSAGING_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.MessagingDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_MESSAGING_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.MessagingDB.Password = dbPassword
	}
}

func initDBs() {
	var err error
	submissionDBService, err = submissionDB.NewSubmissionDBService(db.DBConfigFromYamlObj(conf.DBConfigs.SubmissionDB))
	if err != nil {
		slog.Error("Error connecting to Submission DB", slog.String("error", err.Error()))
		panic(err)
	}

	adminUserDBService, err = adminUserDB.NewAdminUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.AdminUserDB))
	if err != nil {
		slog.Error("Error connecting to Admin User DB", slog.String("error", err.Error()))
		panic(err)
	}

	messagingDBService, err = messagingDB.NewMessagingDBService(db.DBConfigFromYamlObj(conf.DBConfigs.MessagingDB))
	if err != nil {
		slog.Error("Error connecting to Messaging DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initMessageSendingConfig() {
	var smtpClients *smtpclient.SmtpClients

	if conf.MessagingConfigs.SmtpServerConfigPath != "" {
		var serverList smtpclient.SmtpServerList
		if err := serverList.ReadFromFile(conf.MessagingConfigs.SmtpServerConfigPath); err != nil {
			slog.Error("Error reading SMTP server config", slog.String("error", err.Error()))
			panic(err)
		}

		var err error
		smtpClients, err = smtpclient.NewSmtpClients(serverList)
		if err != nil {
			slog.Error("Error initializing SMTP clients", slog.String("error", err.Error()))
			panic(err)
		}
	} else {
		// without SMTP transport every email is parked in the outgoing
		// collection instead of being delivered
		slog.Warn("no SMTP server config path set, emails will not be delivered")
	}

	emailsending.InitMessageSendingVariables(
		smtpClients,
		conf.MessagingConfigs.GlobalEmailTemplateConstants,
		messagingDBService,
	)
}
