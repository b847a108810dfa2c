package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// Init reads config.yml from the usual relative locations. Every key can be
// overridden from the environment as VIDEOHUB_<SECTION>_<KEY>, e.g.
// VIDEOHUB_MONGO_URI. A missing file is not fatal; defaults apply.
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	v := viper.GetViper()
	v.SetConfigType("yaml")
	v.SetConfigName("config.yml")

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		v.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults and environment: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", v.ConfigFileUsed())
	}

	Load(v)
}

// Load fills ConfigInfo from v after applying defaults and env bindings.
func Load(v *viper.Viper) {
	setDefaults(v)
	v.SetEnvPrefix("VIDEOHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	ConfigInfo.Server.Addr = v.GetString("server.addr")
	ConfigInfo.Server.MaxRequestBodySize = v.GetInt("server.max_request_body_size")
	ConfigInfo.Server.LogLevel = v.GetString("server.log_level")
	ConfigInfo.Server.PprofAddr = v.GetString("server.pprof_addr")

	ConfigInfo.Mongo.URI = v.GetString("mongo.uri")
	ConfigInfo.Mongo.Database = v.GetString("mongo.database")
	ConfigInfo.Mongo.Timeout = v.GetDuration("mongo.timeout")

	ConfigInfo.Minio.Endpoint = v.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = v.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = v.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = v.GetBool("minio.use_ssl")
	ConfigInfo.Minio.Bucket = v.GetString("minio.bucket")
	ConfigInfo.Minio.PublicURL = v.GetString("minio.public_url")

	ConfigInfo.Redis.Addr = v.GetString("redis.addr")
	ConfigInfo.Redis.Password = v.GetString("redis.password")
	ConfigInfo.Redis.DB = v.GetInt("redis.db")

	ConfigInfo.RabbitMq.Addr = v.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = v.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = v.GetString("rabbitmq.password")

	ConfigInfo.Jwt.Secret = v.GetString("jwt.secret")
	ConfigInfo.Jwt.Timeout = v.GetDuration("jwt.timeout")
	ConfigInfo.Jwt.MaxRefresh = v.GetDuration("jwt.max_refresh")

	ConfigInfo.Comment.RateLimit = v.GetInt64("comment.rate_limit")
	ConfigInfo.Comment.RateWindow = v.GetDuration("comment.rate_window")
	ConfigInfo.Comment.DuplicateWindow = v.GetDuration("comment.duplicate_window")

	ConfigInfo.Flow.QPS = v.GetFloat64("flow.qps")
	ConfigInfo.Upload.TempDir = v.GetString("upload.temp_dir")
	ConfigInfo.Cors.AllowOrigins = v.GetStringSlice("cors.allow_origins")

	logrus.Infof("Config loaded - MongoDB: %s/%s, MinIO: %s/%s",
		redact(ConfigInfo.Mongo.URI), ConfigInfo.Mongo.Database, ConfigInfo.Minio.Endpoint, ConfigInfo.Minio.Bucket)
	if ConfigInfo.Redis.Addr == "" {
		logrus.Warn("No redis configured, comment rate limit disabled")
	}
	if ConfigInfo.RabbitMq.Addr == "" {
		logrus.Warn("No rabbitmq configured, interaction events disabled")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_request_body_size", 512<<20)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "videohub")
	v.SetDefault("mongo.timeout", "10s")
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.bucket", "videohub-media")
	v.SetDefault("jwt.timeout", "1h")
	v.SetDefault("jwt.max_refresh", "240h")
	v.SetDefault("comment.rate_limit", 10)
	v.SetDefault("comment.rate_window", "1m")
	v.SetDefault("comment.duplicate_window", "5m")
	v.SetDefault("flow.qps", 0)
	v.SetDefault("upload.temp_dir", filepath.Join(os.TempDir(), "videohub"))
	v.SetDefault("cors.allow_origins", []string{"*"})
}

// redact hides credentials in a connection uri.
func redact(uri string) string {
	at := strings.LastIndex(uri, "@")
	scheme := strings.Index(uri, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return uri
	}
	return uri[:scheme+3] + "***" + uri[at:]
}
