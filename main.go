// @title           TaktFlow API
// @version         1.0
// @description     Takt planning backend - location breakdown, takt recommendations and flow-line scheduling.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:9000

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	_ "backend/docs"
	"backend/handlers"
	"backend/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var cronRunning int32

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:3000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding", "X-XSRF-TOKEN",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Authorization", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	db := storage.InitDB()
	// Initialize GORM database for takt plan persistence
	_ = storage.InitGormDB()

	db.SetMaxOpenConns(15)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Nightly maintenance
	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	_, err := c.AddFunc("30 2 * * *", func() {
		if !atomic.CompareAndSwapInt32(&cronRunning, 0, 1) {
			log.Println("Previous cron still running. Skipping this run.")
			return
		}
		defer atomic.StoreInt32(&cronRunning, 0)

		log.Println("Starting nightly session cleanup")
		if err := storage.CleanupExpiredSessions(db); err != nil {
			log.Printf("Session cleanup failed: %v", err)
		}
		log.Println("Nightly session cleanup completed")
	})
	if err != nil {
		log.Printf("Failed to schedule cron job: %v", err)
	}
	c.Start()
	defer c.Stop()

	r := gin.Default()

	r.Use(cors.New(CORSConfig()))

	// ==================== 1. AUTH & LOGIN ====================
	r.POST("/api/login", handlers.LoginHandler(db))
	r.POST("/api/validate-session", handlers.ValidateSession(db))
	r.POST("/api/logout", handlers.LogoutHandler(db))

	// ==================== 2. USERS ====================
	r.POST("/api/create_user", handlers.CreateUser(db))
	r.GET("/api/get_user", handlers.GetUserFromSession)

	// ==================== 3. TAKT PLANNING WIZARD ====================
	r.POST("/api/takt/lbs/preview", handlers.TaktLBSPreview(db))
	r.POST("/api/takt/recommendation", handlers.TaktRecommendationHandler(db))
	r.POST("/api/takt/estimate", handlers.TaktEstimateHandler(db))
	r.GET("/api/takt/factors", handlers.GetTaktFactors(db))

	// ==================== 4. LOCATIONS ====================
	r.POST("/api/locations/bulk", handlers.BulkCreateLocations(db))
	r.GET("/api/locations/:project_id", handlers.GetLocations(db))
	r.DELETE("/api/location_delete/:id", handlers.DeleteLocationHandler(db))

	// ==================== 5. TAKT SETUP ====================
	r.POST("/api/setup/takt", handlers.SaveTaktSetupHandler(db))
	r.GET("/api/setup/:project_id", handlers.GetTaktSetupHandler(db))

	// ==================== 6. TAKT PLANS ====================
	r.POST("/api/takt/plans", handlers.CreateTaktPlan(db))
	r.GET("/api/takt/plans/:project_id", handlers.GetTaktPlans(db))
	r.GET("/api/takt/plan/:id", handlers.GetTaktPlanByID(db))
	r.DELETE("/api/takt/plan/:id", handlers.DeleteTaktPlan(db))
	r.POST("/api/takt/plan/:id/activate", handlers.ActivateTaktPlan(db))
	r.GET("/api/takt/plan/:id/grid", handlers.GetTaktPlanGrid(db))
	r.POST("/api/takt/plan/:id/validate", handlers.ValidateTaktPlan(db))
	r.GET("/api/takt/plan/:id/flowline", handlers.GetTaktPlanFlowline(db))

	// ==================== 7. EXPORTS & QR ====================
	r.GET("/api/takt/plan/:id/export/excel", handlers.ExportPlanExcel(db))
	r.GET("/api/takt/plan/:id/export/pdf", handlers.ExportPlanPDF(db))
	r.GET("/api/generate-zone-qr/:id", handlers.GenerateZoneQRCodeJPEG(db))

	// ==================== 8. SWAGGER ====================
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
