package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"vitalis/cmd/fx/admin_fx"
	"vitalis/cmd/fx/auth_fx"
	"vitalis/cmd/fx/benefits_fx"
	"vitalis/cmd/fx/bookings_fx"
	"vitalis/cmd/fx/controllers_fx"
	"vitalis/cmd/fx/db_fx"
	"vitalis/cmd/fx/inquiries_fx"
	"vitalis/cmd/fx/mail_fx"
	"vitalis/cmd/fx/members_fx"
	"vitalis/cmd/fx/patients_fx"
	"vitalis/internal/api/controllers"
	mem "vitalis/pkg/memcache"
	"vitalis/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		members_fx.Module,
		benefits_fx.Module,
		bookings_fx.Module,
		inquiries_fx.Module,
		patients_fx.Module,
		auth_fx.Module,
		admin_fx.Module,
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
	sessions mem.SessionStore,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	benefitController *controllers.BenefitController,
	bookingController *controllers.BookingController,
	inquiryController *controllers.InquiryController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, sessions, authController, memberController, benefitController,
		bookingController, inquiryController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessions mem.SessionStore,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	benefitController *controllers.BenefitController,
	bookingController *controllers.BookingController,
	inquiryController *controllers.InquiryController,
	adminController *controllers.AdminController) {

	// Public surface: booking and inquiry intake plus admin login.
	r.POST("/bookings", bookingController.CreateBooking)
	r.POST("/inquiries", inquiryController.CreateInquiry)
	r.POST("/auth/login", authController.Login)

	admin := r.Group("/admin")
	admin.Use(middleware.SessionAuthMiddleware(sessions))
	admin.Use(middleware.RoleMiddleware("admin"))

	admin.POST("/logout", authController.Logout)

	admin.GET("/members", memberController.ListMembers)
	admin.GET("/members/expired", memberController.ListExpiredMembers)
	admin.GET("/members/:id", memberController.GetMember)
	admin.POST("/members/:id/confirm", memberController.ConfirmMember)
	admin.POST("/members/:id/renew", memberController.RenewMember)
	admin.DELETE("/members/:id", memberController.DeleteMember)
	admin.GET("/members/:id/transactions", memberController.ListMemberTransactions)
	admin.GET("/members/:id/claims", benefitController.ListClaims)
	admin.GET("/members/:id/claims/count", benefitController.GetClaimedCount)
	admin.GET("/members/:id/rewards", benefitController.ListRewards)

	admin.GET("/benefits", benefitController.ListBenefits)
	admin.POST("/benefits", benefitController.CreateBenefit)
	admin.DELETE("/benefits/:id", benefitController.DeleteBenefit)
	admin.POST("/claims/toggle", benefitController.ToggleClaim)

	admin.POST("/rewards", benefitController.GrantReward)
	admin.POST("/rewards/:id/toggle", benefitController.ToggleRewardClaimed)
	admin.DELETE("/rewards/:id", benefitController.DeleteReward)

	admin.GET("/bookings", bookingController.ListBookings)
	admin.PATCH("/bookings/:id/status", bookingController.UpdateBookingStatus)
	admin.GET("/bookings/:id/appointments", bookingController.ListAppointments)
	admin.POST("/appointments", bookingController.ScheduleAppointment)

	admin.GET("/inquiries", inquiryController.ListInquiries)
	admin.PATCH("/inquiries/:id/status", inquiryController.UpdateInquiryStatus)
	admin.POST("/inquiries/:id/convert", inquiryController.ConvertInquiry)

	admin.GET("/patients", adminController.ListPatientRecords)
	admin.GET("/dashboard", adminController.GetDashboard)
	admin.POST("/actions", adminController.ExecuteAction)
}
