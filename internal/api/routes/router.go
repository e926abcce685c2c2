package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/signflow/internal/api/handlers"
	"github.com/linskybing/signflow/internal/api/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, auth *middleware.ServiceAuth) {
	r.GET("/healthz", h.Health.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/download/:fileId", h.Document.DownloadFile)
	r.GET("/ws/doc/check", h.StatusStream.WatchStatus)

	doc := r.Group("/doc")
	{
		doc.POST("/create", h.Document.CreateDocument)
		doc.POST("/sign", h.Document.SignDocument)
		doc.POST("/reject", h.Document.RejectDocument)
		doc.GET("/check", h.Document.CheckDocument)
		doc.POST("/send-pending-links", auth.JWTAuthMiddleware(), h.Sweep.SendPendingLinks)
	}

	po := r.Group("/po/doc")
	{
		po.POST("/create", h.PoDocument.CreatePoDocument)
		po.POST("/sign", h.PoDocument.SignPoDocument)
		po.POST("/reject", h.PoDocument.RejectPoDocument)
		po.GET("/check", h.PoDocument.CheckPoDocument)
	}

	protected := r.Group("/")
	protected.Use(auth.JWTAuthMiddleware())
	{
		protected.GET("/notifications", h.Notification.ListNotifications)
	}
}
