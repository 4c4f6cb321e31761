package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"alcyxob/trainer-backoffice/internal/metrics"
	"alcyxob/trainer-backoffice/internal/service"
)

// Services bundles everything the HTTP surface calls into.
type Services struct {
	Exercises service.ExerciseService
	Workouts  service.WorkoutService
	Clients   service.ClientService
	Trainer   service.TrainerService
	Billing   service.BillingService
	Dashboard service.DashboardService
	Advisor   service.AdvisorService
}

// NewRouter builds the gin engine with its middleware chain and every route.
func NewRouter(svc Services, metricsManager *metrics.Manager, gatherer prometheus.Gatherer, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		RequestLogger(logger),
		RequestMetrics(metricsManager),
		PanicRecovery(metricsManager, logger),
	)
	SetupRoutes(router, svc, gatherer)
	return router
}

func SetupRoutes(router *gin.Engine, svc Services, gatherer prometheus.Gatherer) {
	exerciseHandler := NewExerciseHandler(svc.Exercises)
	workoutHandler := NewWorkoutHandler(svc.Workouts)
	clientHandler := NewClientHandler(svc.Clients)
	trainerHandler := NewTrainerHandler(svc.Trainer)
	billingHandler := NewBillingHandler(svc.Billing, svc.Dashboard)
	advisorHandler := NewAdvisorHandler(svc.Advisor)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/dashboard", billingHandler.Dashboard)

		// --- Exercise Catalog ---
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/muscle-groups", exerciseHandler.GetMuscleGroups)
			exerciseGroup.GET("/:id", exerciseHandler.GetExerciseByID)
			exerciseGroup.GET("/:id/image", exerciseHandler.GetExerciseImage)
		}

		// --- Workout Library ---
		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/clone", workoutHandler.CloneWorkout)
			workoutGroup.POST("/:id/reorder", workoutHandler.ReorderExercises)
		}

		// --- Client Registry ---
		clientGroup := apiV1.Group("/clients")
		{
			clientGroup.GET("", clientHandler.ListClients)
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.GET("/:id", clientHandler.GetClient)
			clientGroup.PUT("/:id", clientHandler.UpdateClient)
			clientGroup.DELETE("/:id", clientHandler.DeleteClient)

			// prescriptions and sessions
			clientGroup.POST("/:id/workouts", trainerHandler.AssignWorkout)
			clientGroup.DELETE("/:id/workouts/:workoutId", trainerHandler.RemoveAssignedWorkout)
			clientGroup.POST("/:id/workouts/:workoutId/complete", trainerHandler.CompleteWorkout)
			clientGroup.POST("/:id/exercises", trainerHandler.AssignExercise)
			clientGroup.DELETE("/:id/exercises/:index", trainerHandler.RemoveAssignedExercise)

			// payments
			clientGroup.POST("/:id/payments/confirm", billingHandler.ConfirmPayment)
			clientGroup.GET("/:id/payments/reminder", billingHandler.PaymentReminder)
		}

		// --- Billing ---
		billingGroup := apiV1.Group("/billing")
		{
			billingGroup.GET("/summary", billingHandler.Summary)
			billingGroup.POST("/recurring", billingHandler.ProcessRecurring)
		}

		// --- AI Advisor ---
		aiGroup := apiV1.Group("/ai")
		{
			aiGroup.POST("/plans", advisorHandler.GeneratePlan)
			aiGroup.POST("/plans/save", advisorHandler.SavePlan)
			aiGroup.POST("/questions", advisorHandler.Ask)
		}
	}
}
