package main

import (
	"os"
	"time"

	"brewbite-pos/internal/database"
	"brewbite-pos/internal/engine"
	"brewbite-pos/internal/handlers"
	"brewbite-pos/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found")
	}

	db, err := database.Connect(logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	eng := engine.New(db, logger)
	h := handlers.New(eng, db, logger)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", h.Login)

	// Self-service registration only opens when explicitly allowed;
	// admins can always register users through the protected route.
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/register", h.Register)
		logger.Warn("registration route is open; disable ALLOW_REGISTRATION in production")
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/inventory", h.GetInventory)
		api.GET("/expenses", h.GetExpenses)
		api.GET("/sales", h.GetSales)
		api.GET("/suppliers", h.GetSuppliers)
		api.POST("/sales", h.RegisterSales)

		admin := api.Group("/")
		admin.Use(middleware.RequireType(engine.RegistrationAdmin))
		{
			admin.POST("/inventory", h.AddInventoryItem)
			admin.PUT("/inventory/:id", h.UpdateInventoryItem)
			admin.DELETE("/inventory/:id", h.DeleteInventoryItem)

			admin.POST("/expenses", h.AddExpense)
			admin.PUT("/expenses/:id", h.UpdateExpense)
			admin.DELETE("/expenses/:id", h.DeleteExpense)

			admin.PUT("/sales/:id", h.UpdateSalesRecord)
			admin.DELETE("/sales/:id", h.DeleteSalesRecord)

			admin.POST("/users", h.Register)
			admin.GET("/users", h.GetUsers)
			admin.PUT("/users/:id", h.UpdateUser)
			admin.DELETE("/users/:id", h.DeleteUser)

			admin.GET("/reports", h.GetFinancialReport)
			admin.GET("/reports/valuation", h.GetStockValuation)
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
