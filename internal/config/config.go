package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr         string
	Port               string
	DatabasePath       string
	SessionSecret      string
	SessionSecure      bool
	GinMode            string
	UploadDir          string
	UploadURLPath      string
	RootAdminUsername  string
	RootAdminPassword  string
	CORSAllowedOrigins []string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "redzone.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "redzone-dev-secret"
	}

	// 仅在显式开启时才把会话 Cookie 标记为 Secure，避免纯 HTTP 部署下浏览器拒收
	sessionSecure := strings.EqualFold(strings.TrimSpace(os.Getenv("SESSION_SECURE")), "true")

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "web/static/uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/static/uploads"
	}

	corsOrigins := parseCSV(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	rootAdminUsername := strings.TrimSpace(os.Getenv("ROOT_ADMIN_USERNAME"))
	rootAdminPassword := strings.TrimSpace(os.Getenv("ROOT_ADMIN_PASSWORD"))

	return AppConfig{
		ListenAddr:         listenAddr,
		Port:               port,
		DatabasePath:       databasePath,
		SessionSecret:      sessionSecret,
		SessionSecure:      sessionSecure,
		GinMode:            ginMode,
		UploadDir:          uploadDir,
		UploadURLPath:      uploadURLPath,
		RootAdminUsername:  rootAdminUsername,
		RootAdminPassword:  rootAdminPassword,
		CORSAllowedOrigins: corsOrigins,
	}
}

func parseCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		values = append(values, trimmed)
	}
	return values
}
