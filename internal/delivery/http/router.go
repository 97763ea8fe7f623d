package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/riskaamelia-wd/sumq/internal/config"
	"github.com/riskaamelia-wd/sumq/internal/delivery/http/controllers"
	"github.com/riskaamelia-wd/sumq/internal/delivery/http/controllers/middleware"
	"github.com/riskaamelia-wd/sumq/internal/service"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

func InitRoutes(l logger.Log, cfg *config.Config, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(corsConfig))

	statusController := controllers.NewStatusHandler()
	topicController := controllers.NewTopicHandler(l, u.TopicService)
	slideController := controllers.NewSlideHandler(l, u.SlideService)
	templateController := controllers.NewTemplateHandler(l, u.TemplateService)
	viewerController := controllers.NewViewerHandler(l, u.ViewerService)
	generateController := controllers.NewGenerateHandler(l, u.GenerationService)

	v1 := r.Group("/v1", middleware.Logging(l))
	{
		v1.GET("/status", statusController.Status)

		topics := v1.Group("/topics")
		{
			topics.POST("", topicController.CreateTopic)
			topics.GET("", topicController.ListTopics)
			topics.GET("/:topic_id", topicController.TopicByID)
			topics.PUT("/:topic_id", topicController.UpdateTopic)
			topics.PATCH("/:topic_id/active", topicController.SetTopicActive)
			topics.DELETE("/:topic_id", topicController.DeleteTopic)

			topics.POST("/:topic_id/subtopics", topicController.CreateSubtopic)
			topics.GET("/:topic_id/subtopics", topicController.SubtopicsByTopic)
		}

		subtopics := v1.Group("/subtopics")
		{
			subtopics.PUT("/:subtopic_id", topicController.UpdateSubtopic)
			subtopics.DELETE("/:subtopic_id", topicController.DeleteSubtopic)
			subtopics.GET("/:subtopic_id/slides", slideController.SlidesBySubtopic)
			subtopics.POST("/:subtopic_id/sessions", viewerController.OpenSubtopicSession)
		}

		slides := v1.Group("/slides")
		{
			slides.POST("", slideController.CreateSlide)
			slides.GET("/:slide_id", slideController.SlideByID)
			slides.PUT("/:slide_id", slideController.UpdateSlide)
			slides.DELETE("/:slide_id", slideController.DeleteSlide)
			slides.PATCH("/swap", slideController.SwapSlides)
			slides.PUT("/:slide_id/image", slideController.UploadSlideImage)
			slides.GET("/:slide_id/image", slideController.SlideImageURL)
		}

		templates := v1.Group("/templates")
		{
			templates.GET("", templateController.ListTemplates)
			templates.GET("/:name", templateController.TemplateByName)
			templates.POST("/showcase-sessions", viewerController.OpenShowcaseSession)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.GET("/:session_id", viewerController.CurrentFrame)
			sessions.POST("/:session_id/next", viewerController.Next)
			sessions.POST("/:session_id/prev", viewerController.Prev)
			sessions.POST("/:session_id/goto", viewerController.GoTo)
			sessions.POST("/:session_id/answer", viewerController.SelectAnswer)
			sessions.DELETE("/:session_id", viewerController.CloseSession)
		}

		v1.POST("/generate/questions", generateController.GenerateQuestions)
	}
	return r
}
