package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"payflow/cmd/fx/billing_fx"
	"payflow/cmd/fx/controllers_fx"
	"payflow/cmd/fx/customer_fx"
	"payflow/cmd/fx/db_fx"
	"payflow/cmd/fx/gateway_fx"
	"payflow/cmd/fx/mail_fx"
	"payflow/internal/api/controllers"
	"payflow/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		gateway_fx.Module,
		customer_fx.Module,
		billing_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	customerController *controllers.CustomerController,
	billingController *controllers.BillingController,
	invoiceController *controllers.InvoiceController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, customerController, billingController, invoiceController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	customerController *controllers.CustomerController,
	billingController *controllers.BillingController,
	invoiceController *controllers.InvoiceController) {

	customersGroup := r.Group("/customers")
	customersGroup.POST("/register", customerController.Register)
	customersGroup.POST("/login", customerController.Login)
	customersGroup.GET("/me", middleware.JWTAuthMiddleware(), customerController.Me)
	customersGroup.GET("/all", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), customerController.GetAllCustomers)

	methodsGroup := r.Group("/payment-methods", middleware.JWTAuthMiddleware())
	methodsGroup.POST("", customerController.RegisterCard)
	methodsGroup.GET("", customerController.ListPaymentMethods)

	subscriptionsGroup := r.Group("/subscriptions", middleware.JWTAuthMiddleware())
	subscriptionsGroup.POST("", billingController.CreateSubscription)
	subscriptionsGroup.GET("", billingController.ListSubscriptions)
	subscriptionsGroup.DELETE("/:id", billingController.CancelSubscription)

	paymentsGroup := r.Group("/payments", middleware.JWTAuthMiddleware())
	paymentsGroup.POST("", billingController.ProcessPayment)

	invoicesGroup := r.Group("/invoices", middleware.JWTAuthMiddleware())
	invoicesGroup.GET("", invoiceController.ListInvoices)
	invoicesGroup.GET("/:id", invoiceController.GetInvoice)
}
