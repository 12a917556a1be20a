package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
	Version  string `yaml:"version" json:"version"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	Secret    string `yaml:"secret" json:"secret"`
	UploadDir string `yaml:"upload_dir" json:"upload_dir"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type SmtpConfig struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
}

type AppConfig struct {
	System   SysConfig  `yaml:"system" json:"system"`
	Web      WebConfig  `yaml:"web" json:"web"`
	Database DBConfig   `yaml:"database" json:"database"`
	Logger   LogConfig  `yaml:"logger" json:"logger"`
	Smtp     SmtpConfig `yaml:"smtp" json:"smtp"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "workshop",
		Location: "America/Sao_Paulo",
		Workdir:  "/var/workshop",
		Debug:    true,
		Version:  "dev",
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      8080,
		Secret:    "9b6de5cc-workshop-0cc9-11ec-a8fc",
		UploadDir: "uploads",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "workshop",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/workshop/workshop.log",
	},
}

func setEnvString(field *string, name string) {
	if v := os.Getenv(name); v != "" {
		*field = v
	}
}

func setEnvInt(field *int, name string) {
	if v := os.Getenv(name); v != "" {
		*field = cast.ToInt(v)
	}
}

func setEnvBool(field *bool, name string) {
	if v := os.Getenv(name); v != "" {
		*field = cast.ToBool(v)
	}
}

// LoadConfig reads the YAML configuration file and applies WORKSHOP_*
// environment overrides. A missing or empty path yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		if err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvString(&cfg.System.Workdir, "WORKSHOP_SYSTEM_WORKDIR")
	setEnvBool(&cfg.System.Debug, "WORKSHOP_SYSTEM_DEBUG")
	setEnvString(&cfg.Web.Host, "WORKSHOP_WEB_HOST")
	setEnvInt(&cfg.Web.Port, "WORKSHOP_WEB_PORT")
	setEnvString(&cfg.Web.Secret, "WORKSHOP_WEB_SECRET")
	setEnvString(&cfg.Web.UploadDir, "WORKSHOP_WEB_UPLOAD_DIR")
	setEnvString(&cfg.Database.Type, "WORKSHOP_DB_TYPE")
	setEnvString(&cfg.Database.Host, "WORKSHOP_DB_HOST")
	setEnvInt(&cfg.Database.Port, "WORKSHOP_DB_PORT")
	setEnvString(&cfg.Database.Name, "WORKSHOP_DB_NAME")
	setEnvString(&cfg.Database.User, "WORKSHOP_DB_USER")
	setEnvString(&cfg.Database.Passwd, "WORKSHOP_DB_PASSWD")
	setEnvBool(&cfg.Database.Debug, "WORKSHOP_DB_DEBUG")
	setEnvString(&cfg.Logger.Mode, "WORKSHOP_LOGGER_MODE")
	setEnvString(&cfg.Smtp.Host, "WORKSHOP_SMTP_HOST")
	setEnvInt(&cfg.Smtp.Port, "WORKSHOP_SMTP_PORT")
	setEnvString(&cfg.Smtp.Username, "WORKSHOP_SMTP_USERNAME")
	setEnvString(&cfg.Smtp.Password, "WORKSHOP_SMTP_PASSWORD")
	setEnvString(&cfg.Smtp.From, "WORKSHOP_SMTP_FROM")

	return cfg
}

// UploadPath resolves a path under the configured upload directory.
func (c *AppConfig) UploadPath(elem ...string) string {
	return filepath.Join(append([]string{c.Web.UploadDir}, elem...)...)
}
