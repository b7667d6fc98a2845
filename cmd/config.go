package cmd

type Config struct {
	HTTPPort   string
	TCPPort    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}
