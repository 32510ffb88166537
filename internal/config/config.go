package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyS3Region          = "s3.region"
	KeyS3Endpoint        = "s3.endpoint"
	KeyS3AccessKeyID     = "s3.access_key_id"
	KeyS3SecretAccessKey = "s3.secret_access_key"
	KeyHookPath          = "hook.path"

	EnvPrefix       = "schedcheck"
	DefaultFileName = ".schedcheck"
	DefaultCSVPath  = "public/data/schedule.csv"
)

type Settings struct {
	LogLevel          string
	LogFormat         string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	HookPath          string
}

// New returns a viper instance with defaults, the SCHEDCHECK_* environment
// and, when present, a config file applied. With file empty, .schedcheck.yaml
// in the working directory is used if it exists.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyS3Region, "")
	v.SetDefault(KeyS3Endpoint, "")
	v.SetDefault(KeyS3AccessKeyID, "")
	v.SetDefault(KeyS3SecretAccessKey, "")
	v.SetDefault(KeyHookPath, DefaultCSVPath)

	// SCHEDCHECK_LOG_LEVEL, SCHEDCHECK_S3_ENDPOINT, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(DefaultFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

func Load(v *viper.Viper) Settings {
	return Settings{
		LogLevel:          v.GetString(KeyLogLevel),
		LogFormat:         v.GetString(KeyLogFormat),
		S3Region:          v.GetString(KeyS3Region),
		S3Endpoint:        v.GetString(KeyS3Endpoint),
		S3AccessKeyID:     v.GetString(KeyS3AccessKeyID),
		S3SecretAccessKey: v.GetString(KeyS3SecretAccessKey),
		HookPath:          v.GetString(KeyHookPath),
	}
}
