package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"recall-reconciliation-backend/internal/audit"
	"recall-reconciliation-backend/internal/config"
	handler "recall-reconciliation-backend/internal/handlers"
	"recall-reconciliation-backend/internal/repository"
	service "recall-reconciliation-backend/internal/services/cases"
	"recall-reconciliation-backend/internal/services/extraction"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, log *zap.Logger) {
	ledgerRepo := repository.NewLedgerRepository(db, cfg.PermalinkBaseURL)
	caseRepo := repository.NewCaseRepository(db)

	caseService := service.NewService(
		extraction.New(log),
		ledgerRepo,
		caseRepo,
		audit.NewSink(cfg.AuditCSVPath),
		cfg.Assignee,
		log,
	)

	caseHandler := handler.NewCaseHandler(caseService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Case routes
	cases := api.Group("/cases")
	cases.POST("/process", caseHandler.ProcessCase)
	cases.GET("", caseHandler.ListCases)
	cases.GET("/:id", caseHandler.GetCase)
}
