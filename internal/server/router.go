package server

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/lessons", h.GetLessons)
		api.GET("/lessons/:id", h.GetLesson)

		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.PutProfile)
		api.DELETE("/profile", h.DeleteProfile)

		api.GET("/progress/:id", h.GetProgress)
		api.PUT("/progress/:id", h.PutProgress)
		api.GET("/quizstats/:id", h.GetQuizStats)
		api.PUT("/quizstats/:id", h.PutQuizStats)

		api.GET("/export/:id", h.Export)
		api.POST("/import", h.Import)
	}

	return r
}
