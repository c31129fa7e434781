package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/formbuilder-api/internal/config"
	"github.com/yourusername/formbuilder-api/internal/handler"
	"github.com/yourusername/formbuilder-api/internal/middleware"
	"github.com/yourusername/formbuilder-api/internal/repository/kvstore"
	"github.com/yourusername/formbuilder-api/internal/service"
	"github.com/yourusername/formbuilder-api/internal/storage"
	"github.com/yourusername/formbuilder-api/internal/ws"
	"github.com/yourusername/formbuilder-api/pkg/auth"
	"github.com/yourusername/formbuilder-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем хранилище по выбранному драйверу
	kv, err := newKV(cfg)
	if err != nil {
		log.Printf("Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	log.Printf("Хранилище инициализировано (driver=%s)", cfg.Storage.Driver)

	// Инициализируем репозитории
	formRepo := kvstore.NewFormRepo(kv)
	questionRepo := kvstore.NewQuestionRepo(kv)
	responseRepo := kvstore.NewResponseRepo(kv)
	userRepo := kvstore.NewUserRepo(kv)
	adminRepo := kvstore.NewAdminUserRepo(kv)
	notificationRepo := kvstore.NewNotificationRepo(kv)
	certificateRepo := kvstore.NewCertificateRepo(kv)
	settingsRepo := kvstore.NewBrandSettingsRepo(kv)
	activityRepo := kvstore.NewActivityLogRepo(kv)
	templateRepo := kvstore.NewTemplateRepo(kv)

	// Инициализируем JWT
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// WebSocket-хаб живых уведомлений
	hub := ws.NewHub()
	go hub.Run()

	// Email-уведомления о новых прохождениях
	var emailNotifier service.EmailNotifier = &service.NoopEmailNotifier{}
	if cfg.Email.Enabled {
		notifier, err := service.NewResendEmailNotifier(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.To)
		if err != nil {
			log.Printf("Email-уведомления отключены: %v", err)
		} else {
			emailNotifier = notifier
			log.Println("Email-уведомления включены")
		}
	}

	// Инициализируем сервисы
	responseService := service.NewResponseService(responseRepo, certificateRepo, notificationRepo, hub, emailNotifier)
	attemptService := service.NewAttemptService(formRepo, questionRepo, responseRepo, userRepo, responseService)
	formService := service.NewFormService(formRepo, questionRepo, responseRepo, templateRepo, activityRepo)
	shareService := service.NewShareService(formRepo, questionRepo, activityRepo)
	analyticsService := service.NewAnalyticsService(formRepo, questionRepo, responseRepo)
	exportService := service.NewExportService(formRepo, questionRepo, responseRepo, userRepo)
	authService := service.NewAuthService(adminRepo, jwtService)

	// Администратор по умолчанию для первого запуска
	if err := authService.EnsureDefaultAdmin(cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		log.Printf("Failed to ensure default admin: %v", err)
		os.Exit(1)
	}

	// Встроенные шаблоны форм
	if err := service.SeedDefaultTemplates(templateRepo); err != nil {
		log.Printf("Не удалось засеять шаблоны форм: %v", err)
	}

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	formHandler := handler.NewFormHandler(formService, shareService)
	attemptHandler := handler.NewAttemptHandler(attemptService)
	responseHandler := handler.NewResponseHandler(responseRepo, userRepo, activityRepo, analyticsService, exportService)
	adminHandler := handler.NewAdminHandler(notificationRepo, activityRepo, settingsRepo, certificateRepo)
	wsHandler := handler.NewWSHandler(hub)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	allowedOrigins := cfg.CORS.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Аутентификация
		api.POST("/auth/login", authHandler.Login)

		// Публичные маршруты прохождения
		public := api.Group("/public")
		{
			publicForm := public.Group("/forms/:id")
			publicForm.Use(middleware.ExtractIDParam("id", "formID"))
			{
				publicForm.GET("", attemptHandler.GetPublicForm)
				publicForm.POST("/submit", attemptHandler.Submit)
			}

			publicCert := public.Group("/certificates/:id")
			publicCert.Use(middleware.ExtractIDParam("id", "certificateID"))
			{
				publicCert.GET("", adminHandler.GetCertificate)
			}
		}

		// Маршруты админ-панели
		admin := api.Group("")
		admin.Use(authMiddleware.RequireAuth())
		{
			forms := admin.Group("/forms")
			{
				forms.GET("", formHandler.ListForms)
				forms.POST("", formHandler.CreateForm)
				forms.POST("/import", formHandler.ImportShareBlob)

				formWithID := forms.Group("/:id")
				formWithID.Use(middleware.ExtractIDParam("id", "formID"))
				{
					formWithID.GET("", formHandler.GetForm)
					formWithID.PUT("", formHandler.UpdateForm)
					formWithID.DELETE("", formHandler.DeleteForm)
					formWithID.POST("/publish", formHandler.PublishForm)
					formWithID.POST("/unpublish", formHandler.UnpublishForm)
					formWithID.POST("/questions", formHandler.AddQuestion)
					formWithID.POST("/questions/reorder", formHandler.ReorderQuestions)
					formWithID.GET("/share", formHandler.ExportShareBlob)
					formWithID.GET("/responses", responseHandler.ListResponses)
					formWithID.GET("/responses/export", responseHandler.ExportResponses)
					formWithID.GET("/analytics", responseHandler.GetFormAnalytics)
					formWithID.GET("/certificates", adminHandler.ListCertificates)
				}
			}

			questions := admin.Group("/questions/:id")
			questions.Use(middleware.ExtractIDParam("id", "questionID"))
			{
				questions.PUT("", formHandler.UpdateQuestion)
				questions.DELETE("", formHandler.DeleteQuestion)
			}

			responses := admin.Group("/responses/:id")
			responses.Use(middleware.ExtractIDParam("id", "responseID"))
			{
				responses.GET("", responseHandler.GetResponse)
				responses.DELETE("", responseHandler.DeleteResponse)
			}

			templates := admin.Group("/templates")
			{
				templates.GET("", formHandler.ListTemplates)

				// Идентификаторы встроенных шаблонов - слаги, не UUID
				templateWithID := templates.Group("/:id")
				templateWithID.Use(middleware.ExtractStringParam("id", "templateID"))
				{
					templateWithID.POST("/instantiate", formHandler.CreateFromTemplate)
				}
			}

			admin.GET("/notifications", adminHandler.ListNotifications)
			admin.GET("/activity", adminHandler.ListActivity)
			admin.GET("/settings/brand", adminHandler.GetBrandSettings)
			admin.PUT("/settings/brand", adminHandler.UpdateBrandSettings)
		}
	}

	// WebSocket маршрут
	router.GET("/ws", wsHandler.HandleConnection)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}

// newKV создает key-value хранилище по конфигурации
func newKV(cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemoryKV(), nil
	case "file", "":
		return storage.NewFileKV(cfg.Storage.Dir)
	case "redis":
		client, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Println("Successfully connected to Redis")
		return storage.NewRedisKV(client, cfg.Storage.Prefix)
	default:
		return nil, errors.New("unsupported storage driver: " + cfg.Storage.Driver)
	}
}
