package router

import (
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/config"
	"github.com/HanyRabah/redzone-sub002/internal/handler"
	"github.com/HanyRabah/redzone-sub002/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup 配置 Gin 引擎和路由
func Setup(cfg config.AppConfig, gdb *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinLogger())

	// 配置会话中间件
	// gorilla 默认 Secure+SameSite=None，纯 HTTP 下浏览器会丢弃 Cookie，这里显式覆盖
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   cfg.SessionSecure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("redzone_session", store))

	// 管理面板前端跨域访问 API
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// 静态文件服务
	r.Static("/static", "./web/static")

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := handler.NewAPI(gdb, cfg.UploadDir, cfg.UploadURLPath)

	// 前台公开路由
	public := r.Group("/api")
	{
		public.GET("/pages/home", api.GetHomePage)
		public.GET("/pages/about", api.GetAboutPage)
		public.GET("/pages/blog", api.GetBlogPage)
		public.GET("/pages/portfolio", api.GetPortfolioPage)
		public.GET("/pages/contact", api.GetContactPage)
		public.GET("/blog/posts/:slug", api.GetPublishedPost)
		public.GET("/portfolio/projects/:slug", api.GetPublishedProject)
		public.GET("/content/pages/:slug", api.GetPage)
		public.POST("/contact", api.SubmitContact)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)
		admin.GET("/me", api.Me)

		// 需要认证的后台 API
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.GetDashboard)

			auth.GET("/sections", api.GetSections)
			auth.GET("/sections/:page", api.GetSection)
			auth.PUT("/sections/:page", api.SaveSection)

			auth.GET("/hero", api.GetHero)
			auth.PUT("/hero", api.SaveHero)

			auth.GET("/team", api.GetTeamMembers)
			auth.POST("/team", api.CreateTeamMember)
			auth.PUT("/team/reorder", api.ReorderTeamMembers)
			auth.PUT("/team/:id", api.UpdateTeamMember)
			auth.DELETE("/team/:id", api.DeleteTeamMember)

			auth.GET("/testimonials", api.GetTestimonials)
			auth.POST("/testimonials", api.CreateTestimonial)
			auth.PUT("/testimonials/reorder", api.ReorderTestimonials)
			auth.PUT("/testimonials/:id", api.UpdateTestimonial)
			auth.DELETE("/testimonials/:id", api.DeleteTestimonial)

			auth.GET("/clients", api.GetClients)
			auth.POST("/clients", api.CreateClient)
			auth.PUT("/clients/reorder", api.ReorderClients)
			auth.PUT("/clients/:id", api.UpdateClient)
			auth.DELETE("/clients/:id", api.DeleteClient)

			auth.GET("/blog/posts", api.GetBlogPosts)
			auth.GET("/blog/posts/:id", api.GetBlogPost)
			auth.POST("/blog/posts", api.CreateBlogPost)
			auth.PUT("/blog/posts/:id", api.UpdateBlogPost)
			auth.DELETE("/blog/posts/:id", api.DeleteBlogPost)

			auth.GET("/blog/categories", api.GetBlogCategories)
			auth.POST("/blog/categories", api.CreateBlogCategory)
			auth.PUT("/blog/categories/:id", api.UpdateBlogCategory)
			auth.DELETE("/blog/categories/:id", api.DeleteBlogCategory)

			auth.GET("/blog/tags", api.GetBlogTags)
			auth.POST("/blog/tags", api.CreateBlogTag)
			auth.PUT("/blog/tags/:id", api.UpdateBlogTag)
			auth.DELETE("/blog/tags/:id", api.DeleteBlogTag)

			auth.GET("/projects", api.GetProjects)
			auth.GET("/projects/:id", api.GetProject)
			auth.POST("/projects", api.CreateProject)
			auth.PUT("/projects/reorder", api.ReorderProjects)
			auth.PUT("/projects/:id", api.UpdateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)

			auth.GET("/project-categories", api.GetProjectCategories)
			auth.POST("/project-categories", api.CreateProjectCategory)
			auth.PUT("/project-categories/reorder", api.ReorderProjectCategories)
			auth.PUT("/project-categories/:id", api.UpdateProjectCategory)
			auth.DELETE("/project-categories/:id", api.DeleteProjectCategory)

			auth.GET("/pages", api.GetPages)
			auth.GET("/pages/:slug", api.GetPage)
			auth.PUT("/pages/:slug", api.SavePage)
			auth.DELETE("/pages/:slug", api.DeletePage)

			auth.GET("/settings", api.GetSettings)
			auth.PUT("/settings", api.UpdateSettings)

			auth.GET("/submissions", api.GetSubmissions)
			auth.GET("/submissions/:id", api.GetSubmission)
			auth.PUT("/submissions/:id/replied", api.SetSubmissionReplied)
			auth.DELETE("/submissions/:id", api.DeleteSubmission)
			auth.POST("/submissions/bulk", api.BulkSubmissions)

			auth.POST("/uploads", api.UploadImage)

			// 账号管理收紧到管理员角色
			users := auth.Group("/users")
			users.Use(handler.RequireRole("admin"))
			{
				users.GET("", api.GetUsers)
				users.POST("", api.CreateUser)
				users.PUT("/:id", api.UpdateUser)
				users.DELETE("/:id", api.DeleteUser)
			}
		}
	}

	return r
}
