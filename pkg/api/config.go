package api

type Config struct {
	Host       string `env:"API_HOST,default=0.0.0.0"`
	Port       int    `env:"API_PORT,default=3456"`
	CORSOrigin string `env:"API_CORS_ORIGIN,default=*"`
}
