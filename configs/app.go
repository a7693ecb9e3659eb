package configs

import "fmt"

type AppConfig struct {
	Name string
	Env  string
	Host string
	Port int
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		Name: GetEnv("APP_NAME", "rehber.link"),
		Env:  GetEnv("APP_ENV", "development"),
		Host: GetEnv("APP_HOST", ""),
		Port: GetEnvInt("APP_PORT", 3000),
	}
}

func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}
