package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	handler "supplier-ledger-backend/internal/handlers"
	"supplier-ledger-backend/internal/repository"
	invoicesvc "supplier-ledger-backend/internal/services/invoice"
	remindersvc "supplier-ledger-backend/internal/services/reminder"
	spendingsvc "supplier-ledger-backend/internal/services/spending"
	todosvc "supplier-ledger-backend/internal/services/todo"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	dimensionRepo := repository.NewDimensionRepository(db)

	invoiceService := invoicesvc.NewService(invoiceRepo, dimensionRepo, log.Named("invoice"))
	reminderService := remindersvc.NewService(db, dimensionRepo, log.Named("reminder"))
	todoService := todosvc.NewService(db, log.Named("todo"))
	spendingService := spendingsvc.NewService(db, log.Named("spending"))

	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	documentHandler := handler.NewDocumentHandler(reminderService)
	todoHandler := handler.NewTodoHandler(todoService)
	spendingHandler := handler.NewSpendingHandler(spendingService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Supplier invoice ledger
	invoices := api.Group("/invoices")
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/summary", invoiceHandler.Summary)
		invoices.PUT("/:id", invoiceHandler.Edit)
		invoices.DELETE("/:id", invoiceHandler.Delete)
		invoices.POST("/import", invoiceHandler.Import)
	}
	api.GET("/imports/:batchId", invoiceHandler.GetBatch)

	// Department document reminders
	documents := api.Group("/documents")
	{
		documents.POST("", documentHandler.Create)
		documents.GET("", documentHandler.List)
		documents.PUT("/:id", documentHandler.Edit)
		documents.DELETE("/:id", documentHandler.Delete)
	}

	// Personal to-dos
	todos := api.Group("/todos")
	{
		todos.POST("", todoHandler.Create)
		todos.GET("", todoHandler.List)
		todos.POST("/:id/toggle", todoHandler.Toggle)
		todos.PUT("/:id", todoHandler.Edit)
		todos.DELETE("/:id", todoHandler.Delete)
	}

	// Personal finance
	spending := api.Group("/spending")
	{
		spending.POST("", spendingHandler.Create)
		spending.GET("", spendingHandler.List)
		spending.GET("/summary", spendingHandler.Summary)
		spending.GET("/export", spendingHandler.Export)
		spending.PUT("/:id", spendingHandler.Edit)
		spending.DELETE("/:id", spendingHandler.Delete)
	}
}
