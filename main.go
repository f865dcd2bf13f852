package main

import (
	"log"
	"net/http"
	"time"

	"exam-service/internal/allocation"
	"exam-service/internal/config"
	"exam-service/internal/db"
	"exam-service/internal/event"
	"exam-service/internal/handlers"
	"exam-service/internal/repository"
	"exam-service/internal/review"
	"exam-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	if err := db.InitMongo(&cfg.MongoDB); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.CloseMongo()

	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Database
	sampler := allocation.NewSampler()
	reviewCfg := review.Config{
		MinEase:         cfg.Quiz.ReviewMinEase,
		MaxEase:         cfg.Quiz.ReviewMaxEase,
		StartEase:       cfg.Quiz.ReviewStartEase,
		MinIntervalDays: cfg.Quiz.ReviewMinIntervalD,
	}

	// Subjects
	subjectRepo := repository.NewSubjectRepository(database)
	subjectService := service.NewSubjectService(subjectRepo)
	subjectHandler := handlers.NewSubjectHandler(subjectService)

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Reports
	reportRepo := repository.NewReportRepository(database)
	reportService := service.NewReportService(reportRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	// Quiz composition
	quizService := service.NewQuizService(questionRepo, subjectRepo, reportRepo, sampler, cfg.Quiz)
	quizHandler := handlers.NewQuizHandler(quizService)

	// Review scheduling
	reviewRepo := repository.NewReviewRepository(database)
	reviewService := service.NewReviewService(reviewRepo, questionRepo, reviewCfg)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Results
	resultRepo := repository.NewResultRepository(database)
	resultService := service.NewResultService(resultRepo, questionRepo, subjectRepo, reviewService, cfg.Quiz)
	resultHandler := handlers.NewResultHandler(resultService)

	publicSubject := r.Group("/public/exam/subject")
	{
		publicSubject.GET("/", func(c *gin.Context) {
			subjectHandler.ListSubjects(c)
			if publisher != nil {
				publisher.Publish("subject.list", nil)
			}
		})
		publicSubject.GET("/:code", func(c *gin.Context) {
			subjectHandler.GetSubject(c)
			if publisher != nil {
				publisher.Publish("subject.get", gin.H{"code": c.Param("code")})
			}
		})
	}

	publicQuestion := r.Group("/public/exam/question")
	{
		publicQuestion.GET("/", questionHandler.ListQuestions)
		publicQuestion.GET("/:id", questionHandler.GetQuestion)
	}

	publicUser := r.Group("/public/exam/user")
	{
		publicUser.GET("/:id/results", func(c *gin.Context) {
			resultHandler.GetResultsByUser(c)
			if publisher != nil {
				publisher.Publish("user.results", gin.H{"id": c.Param("id")})
			}
		})
	}

	protected := r.Group("/protected/exam")
	protected.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})
	{
		protected.POST("/quiz/fullbook", func(c *gin.Context) {
			quizHandler.ComposeFullBook(c)
			if publisher != nil {
				publisher.Publish("quiz.composed.fullbook", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})
		protected.POST("/quiz/custom", func(c *gin.Context) {
			quizHandler.ComposeCustom(c)
			if publisher != nil {
				publisher.Publish("quiz.composed.custom", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})

		protected.POST("/result", func(c *gin.Context) {
			resultHandler.SubmitResult(c)
			if publisher != nil {
				publisher.Publish("result.submitted", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})

		protected.GET("/review/due", func(c *gin.Context) {
			reviewHandler.GetDueQuestions(c)
			if publisher != nil {
				publisher.Publish("review.due_requested", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
					"limit":   c.Query("limit"),
				})
			}
		})

		protected.POST("/question", questionHandler.CreateQuestion)
		protected.PUT("/question/:id", questionHandler.UpdateQuestion)
		protected.DELETE("/question/:id", questionHandler.DeleteQuestion)

		protected.POST("/subject", subjectHandler.CreateSubject)
		protected.PUT("/subject/:code", subjectHandler.UpdateSubject)

		protected.POST("/report", func(c *gin.Context) {
			reportHandler.ReportQuestion(c)
			if publisher != nil {
				publisher.Publish("question.reported", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})
		protected.GET("/report/unresolved", reportHandler.ListUnresolved)
		protected.POST("/report/:id/resolve", reportHandler.ResolveReport)
	}

	r.Run(":" + cfg.Server.Port)
}
