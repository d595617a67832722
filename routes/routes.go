package routes

import (
	"net/http"
	"time"

	"mealroom/handlers"
	"mealroom/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoomRoutes registers room creation/lookup and room-scoped schedule
// endpoints. Week routes accept any date inside the week; the service
// normalizes it to the ISO Monday.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.POST("", hb.Rooms.CreateRoomHandler)
		api.GET("/:code", hb.Rooms.GetRoomHandler)

		api.GET("/:code/weeks/:date", hb.Schedules.GetWeekHandler)
		api.POST("/:code/weeks/:date/generate", hb.Schedules.GenerateWeekHandler)
		api.POST("/:code/weeks/:date/days/:day/regenerate", hb.Schedules.RegenerateDayHandler)
		api.POST("/:code/weeks/:date/days/:day/slots/:slot/regenerate", hb.Schedules.RegenerateSlotHandler)

		api.GET("/:code/days/:date", hb.Schedules.GetDayHandler)
		api.POST("/:code/days/:date/generate", hb.Schedules.GenerateDayHandler)
	}
}

// RegisterHistoryRoutes registers the per-device visit history endpoints.
func RegisterHistoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/history")
	{
		api.GET("", hb.History.GetHistoryHandler)
		api.POST("", hb.History.TouchHistoryHandler)
		api.DELETE("", hb.History.ClearHistoryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Device-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoomRoutes(r, hb)
	RegisterHistoryRoutes(r, hb)
	RegisterHealthRoute(r)
}
