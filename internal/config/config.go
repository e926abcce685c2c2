package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	ServerPort  string
	JwtSecret   string
	Issuer      string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// Folders the blob store files documents under.
	FolderDoc    string
	FolderSigned string
	FolderPo     string

	MessagingBaseURL       string
	MessagingPhoneNumberID string
	MessagingAccessKey     string
	MessageInterval        time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	SenderLabel     string
	SignBaseURL     string
	DownloadBaseURL string
	PhoneRegion     string

	CORSOrigins           []string
	NotificationRetention int
	StatusPollInterval    time.Duration
	TemplatesFile         string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("SERVER_PORT", "3000"),
		JwtSecret:   getEnv("JWT_SECRET", "defaultsecret"),
		Issuer:      getEnv("ISSUER", "signflow"),

		DbHost:     getEnv("DB_HOST", "localhost"),
		DbPort:     getEnv("DB_PORT", "5432"),
		DbUser:     getEnv("DB_USER", "postgres"),
		DbPassword: getEnv("DB_PASSWORD", "password"),
		DbName:     getEnv("DB_NAME", "signflow"),
		DbSSLMode:  getEnv("DB_SSLMODE", "disable"),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:    getBool("MINIO_USE_SSL", false),
		MinioBucket:    getEnv("MINIO_BUCKET", "documents"),

		FolderDoc:    getEnv("FOLDER_ID_DOC", "incoming"),
		FolderSigned: getEnv("FOLDER_ID_SIGNED", "signed"),
		FolderPo:     getEnv("FOLDER_ID_PO", "po"),

		MessagingBaseURL:       getEnv("NWA_BASE_URL", "https://nwc.nusa.net.id"),
		MessagingPhoneNumberID: getEnv("NWA_PHONE_NUMBER_ID", ""),
		MessagingAccessKey:     getEnv("NWA_ACCESS_KEY", ""),
		MessageInterval:        getDuration("MESSAGE_INTERVAL", 2*time.Second),

		SMTPHost:     getEnv("HOST_SMTP", "localhost"),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PAS", ""),
		MailFrom:     getEnv("MAIL_FROM", "nds@nusa.net.id"),

		SenderLabel:     getEnv("SENDER_LABEL", "PT Media Antar Nusa"),
		SignBaseURL:     getEnv("SIGN_BASE_URL", "https://nds.nusa.net.id"),
		DownloadBaseURL: getEnv("DOWNLOAD_BASE_URL", "http://localhost:3000/download"),
		PhoneRegion:     getEnv("PHONE_REGION", "ID"),

		CORSOrigins:           splitList(getEnv("CORS_ORIGINS", "")),
		NotificationRetention: getInt("NOTIFICATION_RETENTION_DAYS", 90),
		StatusPollInterval:    getDuration("STATUS_POLL_INTERVAL", 5*time.Second),
		TemplatesFile:         getEnv("TEMPLATES_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
