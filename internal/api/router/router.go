package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/config"
	"eventura/internal/api/handler"
	"eventura/internal/api/middleware"
	"eventura/pkg/jwt"
	"eventura/pkg/redis"
)

// 全局请求体上限（文件上传路由单独放宽）
const maxBodyBytes = 1 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录/注册单独限流）
		auth := v1.Group("/auth")
		auth.Use(middleware.BodyLimit(maxBodyBytes))
		{
			auth.POST("/register", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Register)
			auth.POST("/login", middleware.RateLimit(rdb, 20, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/switch-role", h.Auth.SwitchRole)

			// 活动模块
			events := authorized.Group("/events")
			{
				// 仪表盘（静态段必须先于 /:id 注册同级）
				dashboard := events.Group("/dashboard", middleware.AdminOnly())
				{
					dashboard.GET("", h.Dashboard.Get)
					dashboard.GET("/stats", h.Dashboard.Stats)
					dashboard.GET("/upcoming", h.Dashboard.Upcoming)
					dashboard.GET("/drafts", h.Dashboard.Drafts)
					dashboard.GET("/completed", h.Dashboard.Completed)
					dashboard.GET("/cancelled", h.Dashboard.Cancelled)
					dashboard.GET("/organizer/:organizerId", h.Event.ListByOrganizer)
				}

				events.GET("", h.Event.List)
				events.POST("", middleware.AdminOnly(), h.Event.Create)
				events.GET("/:id", h.Event.Get)
				events.PATCH("/:id", middleware.AdminOnly(), h.Event.Update)
				events.DELETE("/:id", middleware.AdminOnly(), h.Event.Delete)
				events.GET("/:id/calendar.ics", h.Export.EventICS)
			}

			// 分类模块（读公开给登录用户，写仅超管）
			categories := authorized.Group("/categories")
			{
				categories.GET("", h.Category.List)
				categories.GET("/:id", h.Category.Get)
				categories.POST("", middleware.SuperAdminOnly(), h.Category.Create)
				categories.PATCH("/:id", middleware.SuperAdminOnly(), h.Category.Update)
				categories.DELETE("/:id", middleware.SuperAdminOnly(), h.Category.Delete)
			}

			// 任务模块
			tasks := authorized.Group("/tasks")
			{
				tasks.GET("", h.Task.List)
				tasks.GET("/:id", h.Task.Get)
				tasks.POST("", middleware.AdminOnly(), h.Task.Create)
				tasks.PUT("/:id", middleware.AdminOnly(), h.Task.Update)
				tasks.DELETE("/:id", middleware.AdminOnly(), h.Task.Delete)
			}

			// 任务指派模块
			assignments := authorized.Group("/assignments")
			{
				assignments.GET("", middleware.AdminOnly(), h.Assignment.List)
				assignments.GET("/my", h.Assignment.MyAssignments)
				assignments.GET("/task/:taskId", h.Assignment.ListByTask)
				assignments.GET("/volunteer/:volunteerId", middleware.AdminOnly(), h.Assignment.ListByVolunteer)
				assignments.POST("", middleware.AdminOnly(), h.Assignment.Create)
				assignments.GET("/:id", h.Assignment.Get)
				assignments.PATCH("/:id", h.Assignment.UpdateStatus) // 志愿者本人或组织者（Service 层鉴权）
				assignments.DELETE("/:id", middleware.AdminOnly(), h.Assignment.Delete)
			}

			// 志愿者模块
			volunteers := authorized.Group("/volunteers")
			{
				volunteers.POST("/apply", h.Volunteer.Apply)
				volunteers.GET("/my-applications", h.Volunteer.MyApplications)
				volunteers.GET("/event/:eventId", middleware.AdminOnly(), h.Volunteer.ListByEvent)
				volunteers.GET("/:userId/:eventId", h.Volunteer.Get)
				volunteers.PATCH("/:userId/:eventId", middleware.AdminOnly(), h.Volunteer.UpdateStatus)
				volunteers.DELETE("/:userId/:eventId", h.Volunteer.Withdraw) // 本人或组织者（Service 层鉴权）
			}

			// 出席模块
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("", h.Attendance.Create)
				attendance.GET("/event/:eventId", middleware.AdminOnly(), h.Attendance.ListByEvent)
				attendance.GET("/event/:eventId/stats", middleware.AdminOnly(), h.Attendance.Stats)
				attendance.GET("/event/:eventId/export", middleware.AdminOnly(), h.Export.AttendanceXLSX)
				attendance.POST("/event/:eventId/bulk-check-in", middleware.AdminOnly(), h.Attendance.BulkCheckIn)
				attendance.GET("/record/:id", h.Attendance.GetByToken) // "userId:eventId" 复合键文本
				attendance.GET("/:userId/:eventId", h.Attendance.Get)
				attendance.PATCH("/:userId/:eventId", h.Attendance.UpdateStatus)
				attendance.DELETE("/:userId/:eventId", h.Attendance.Delete)
				// 单段 "userId:eventId" 复合键形式
				attendance.GET("/:userId", h.Attendance.Get)
				attendance.PATCH("/:userId", h.Attendance.UpdateStatus)
				attendance.DELETE("/:userId", h.Attendance.Delete)
			}

			// 关注模块
			interests := authorized.Group("/interests")
			{
				interests.POST("", h.Interest.Add)
				interests.GET("/my-interests", h.Interest.My)
				interests.GET("/check/:eventId", h.Interest.Check)
				interests.GET("/event/:eventId/users", h.Interest.EventUsers)
				interests.DELETE("/event/:eventId", h.Interest.Remove)
			}

			// 通知模块
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.List)
				notifications.GET("/unread-count", h.Notification.UnreadCount)
				notifications.PATCH("/mark-all-read", h.Notification.MarkAllRead)
				notifications.GET("/:id", h.Notification.Get)
				notifications.PATCH("/:id/read", h.Notification.MarkRead)
			}

			// 评论评分模块
			comments := authorized.Group("/comments-ratings")
			{
				comments.POST("", h.Comment.Create)
				comments.GET("/my-comments", h.Comment.MyComments)
				comments.GET("/event/:eventId", h.Comment.ListByEvent)
				comments.GET("/event/:eventId/stats", h.Comment.EventStats)
				comments.GET("/user/:userId", middleware.AdminOnly(), h.Comment.ListByUser)
				comments.GET("/:id", h.Comment.Get)
				comments.PATCH("/:id", h.Comment.Update)
				comments.DELETE("/:id", h.Comment.Delete)
			}

			// 文件上传模块
			uploads := authorized.Group("/file-upload")
			{
				uploads.POST("/minio/image", h.Upload.UploadImage)
				uploads.POST("/minio/document", h.Upload.UploadDocument)
				uploads.POST("/local", h.Upload.UploadLocal)
				uploads.DELETE("/minio/:bucket/:object", middleware.AdminOnly(), h.Upload.Delete)
			}
		}
	}

	return r
}
