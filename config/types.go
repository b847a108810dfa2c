package config

import "time"

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mongo    mongo    `yaml:"mongo" mapstructure:"mongo"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Comment  comment  `yaml:"comment" mapstructure:"comment"`
	Flow     flow     `yaml:"flow" mapstructure:"flow"`
	Upload   upload   `yaml:"upload" mapstructure:"upload"`
	Cors     cors     `yaml:"cors" mapstructure:"cors"`
}

type server struct {
	Addr               string `yaml:"addr"`
	MaxRequestBodySize int    `yaml:"max_request_body_size"`
	LogLevel           string `yaml:"log_level"`
	PprofAddr          string `yaml:"pprof_addr"`
}

type mongo struct {
	URI      string        `yaml:"uri"`
	Database string        `yaml:"database"`
	Timeout  time.Duration `yaml:"timeout"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	Bucket    string `yaml:"bucket"`
	PublicURL string `yaml:"public_url"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// URL is empty when RabbitMQ is not configured.
func (r rabbitmq) URL() string {
	if r.Addr == "" {
		return ""
	}
	return "amqp://" + r.Username + ":" + r.Password + "@" + r.Addr + "/"
}

type jwt struct {
	Secret     string        `yaml:"secret"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRefresh time.Duration `yaml:"max_refresh"`
}

type comment struct {
	RateLimit       int64         `yaml:"rate_limit"`
	RateWindow      time.Duration `yaml:"rate_window"`
	DuplicateWindow time.Duration `yaml:"duplicate_window"`
}

type flow struct {
	QPS float64 `yaml:"qps"`
}

type upload struct {
	TempDir string `yaml:"temp_dir"`
}

type cors struct {
	AllowOrigins []string `yaml:"allow_origins"`
}
