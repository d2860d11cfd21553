package routes

import (
	"ucraft_estimates/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.InstallmentPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id", paymentHandler.PayInstallment)
		payments.GET("/:estimate_id", paymentHandler.ListPayments)
	}
}
