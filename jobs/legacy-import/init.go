package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/parthoooo/story-teller/pkg/db"
	"github.com/parthoooo/story-teller/pkg/utils"

	submissionDB "github.com/parthoooo/story-teller/pkg/db/submissions"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_SUBMISSION_DB_USERNAME = "SUBMISSION_DB_USERNAME"
	ENV_SUBMISSION_DB_PASSWORD = "SUBMISSION_DB_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		SubmissionDB db.DBConfigYaml `json:"submission_db" yaml:"submission_db"`
	} `json:"db_configs" yaml:"db_configs"`
}

var (
	conf config

	submissionDBService *submissionDB.SubmissionDBService
)

// initService loads the config and connects to the DB. Called from the
// command runner, not from init(), so the pure mapping code stays usable
// without a config file or a running Mongo.
func initService() {
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

	secretsOverride()

	submissionDBService, err = submissionDB.NewSubmissionDBService(db.DBConfigFromYamlObj(conf.DBConfigs.SubmissionDB))
	if err != nil {
		panic(err)
	}
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_SUBMISSION_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.SubmissionDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_SUBMISSION_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.SubmissionDB.Password = dbPassword
	}
}
