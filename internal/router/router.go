package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"quotedesk/internal/config"
	"quotedesk/internal/handler"
	"quotedesk/internal/middleware"
	"quotedesk/internal/repository"
	"quotedesk/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	quotationRepo := repository.NewQuotationRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	quotationSvc := service.NewQuotationService(quotationRepo, itemRepo)
	pricingSvc := service.NewPricingService(itemRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	quotationsH := handler.NewQuotationsHandler(quotationSvc, quotationRepo, itemRepo)
	itemsH := handler.NewItemsHandler(quotationSvc, rdb)
	pricingH := handler.NewPricingHandler(pricingSvc, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	r.GET("/quotations", quotationsH.List)
	r.GET("/quotations/:quotation_number/pdf", quotationsH.DownloadPDF)

	r.GET("/items/:quotation_number", itemsH.GetItems)
	r.PUT("/items/:quotation_number/:item_code/:category", pricingH.UpdateCategory)

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
