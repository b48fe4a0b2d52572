package main

import (
	"github.com/HanyRabah/redzone-sub002/internal/config"
	"github.com/HanyRabah/redzone-sub002/internal/db"
	"github.com/HanyRabah/redzone-sub002/internal/logger"
	"github.com/HanyRabah/redzone-sub002/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	// 按需创建初始管理员
	if err := db.EnsureRootAdmin(cfg.RootAdminUsername, cfg.RootAdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure root admin")
	}

	// 设置并运行 Gin 服务器
	r := router.Setup(cfg, db.DB)
	log.Info().Str("addr", cfg.ListenAddr).Msg("server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
