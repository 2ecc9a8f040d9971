package routes

import (
	"qlnt/controllers"
	middlewares "qlnt/middleware"
	"qlnt/repository"
	"qlnt/services"
	"qlnt/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes dựng store, services và controllers rồi gắn toàn bộ
// route vào /api/v1. Trả về BillingService để main gắn cron.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *services.BillingService {
	store := repository.NewGormStore(db)
	log := logger.NewDefaultLogger(logger.InfoLevel)

	rateService := services.NewRateService(services.RateServiceOptions{Store: store, Logger: log})
	billingService := services.NewBillingService(services.BillingServiceOptions{Store: store, Rates: rateService, Logger: log})
	leaseService := services.NewLeaseService(services.LeaseServiceOptions{Store: store, Billing: billingService, Logger: log})
	dashboardService := services.NewDashboardService(services.DashboardServiceOptions{Store: store, Logger: log})
	contractService := services.NewContractService(services.ContractServiceOptions{Store: store})
	searchService := services.NewSearchService(services.SearchServiceOptions{Store: store})

	buildingController := controllers.NewBuildingController(store)
	roomController := controllers.NewRoomController(store, redisCli)
	tenantController := controllers.NewTenantController(store)
	leaseController := controllers.NewLeaseController(leaseService, redisCli, m)
	rateController := controllers.NewRateController(store, rateService)
	transactionController := controllers.NewTransactionController(store, billingService, redisCli, m)
	expenseController := controllers.NewExpenseController(store, redisCli)
	dashboardController := controllers.NewDashboardController(dashboardService, redisCli)
	contractController := controllers.NewContractController(contractService)
	chatController := controllers.NewChatController(searchService)

	v1 := router.Group("/api/v1")

	v1.GET("/buildings", buildingController.GetAllBuildings)
	v1.POST("/buildings", buildingController.CreateBuilding)
	v1.GET("/buildings/:id", buildingController.GetBuildingDetail)
	v1.DELETE("/buildings/:id", buildingController.DeleteBuilding)

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.POST("/rooms", roomController.CreateRoom)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.PUT("/rooms/:id", roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", roomController.DeleteRoom)

	v1.GET("/tenants", tenantController.GetAllTenants)
	v1.POST("/tenants", tenantController.CreateTenant)
	v1.GET("/tenants/:id", tenantController.GetTenantDetail)
	v1.PUT("/tenants/:id", tenantController.UpdateTenant)
	v1.DELETE("/tenants/:id", tenantController.DeleteTenant)

	v1.GET("/leases", leaseController.GetLeases)
	v1.POST("/leases", leaseController.CreateLease)
	v1.GET("/leases/:id", leaseController.GetLeaseDetail)
	v1.GET("/leases/:id/amendments", leaseController.GetLeaseAmendments)
	v1.GET("/leases/:id/contract", contractController.GetContract)
	v1.PUT("/leaseSubmit/:id", leaseController.SubmitLease)
	v1.PUT("/leaseActivate/:id", leaseController.ActivateLease)
	v1.PUT("/leaseAmend", leaseController.AmendLease)
	v1.POST("/leaseRenew", leaseController.RenewLease)
	v1.PUT("/leaseTerminate", leaseController.TerminateLease)

	v1.GET("/rates", rateController.GetAllRates)
	v1.POST("/rates", rateController.CreateRate)
	v1.GET("/ratesResolve", rateController.ResolveRate)
	v1.DELETE("/rates/:id", rateController.DeleteRate)

	v1.GET("/transactions", transactionController.GetAllTransactions)
	v1.POST("/transactions", transactionController.RecordTransaction)
	v1.GET("/transactions/:id", transactionController.GetTransactionDetail)
	v1.PUT("/transactionPaid", transactionController.MarkPaid)
	v1.DELETE("/transactions/:id", transactionController.DeleteTransaction)
	v1.POST("/meterReading", transactionController.RecordMeterReading)

	v1.GET("/expenses", expenseController.GetAllExpenses)
	v1.POST("/expenses", expenseController.CreateExpense)
	v1.GET("/expenses/:id", expenseController.GetExpenseDetail)
	v1.DELETE("/expenses/:id", expenseController.DeleteExpense)

	v1.GET("/dashboard", dashboardController.GetSummary)

	v1.GET("/search", chatController.Search)
	v1.POST("/chat", middlewares.SessionMiddleware(), chatController.AskAssistant)

	// Hỏi trợ lý qua websocket: message vào là câu hỏi, message ra là
	// câu trả lời gửi riêng cho session đó
	m.HandleMessage(func(s *melody.Session, msg []byte) {
		reply, err := services.AskAssistant(string(msg))
		if err != nil {
			s.Write([]byte("Trợ lý không phản hồi, thử lại sau"))
			return
		}
		s.Write([]byte(reply))
	})

	return billingService
}
