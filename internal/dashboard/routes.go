package dashboard

import (
	"net/http"
	"time"

	"github.com/crewdeck/crewdeck/internal/budget"
	"github.com/crewdeck/crewdeck/internal/mirror"
	"github.com/crewdeck/crewdeck/internal/usage"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all API routes on the Gin router.
func registerRoutes(router *gin.Engine, opts StartOpts) {
	api := router.Group("/api")
	api.GET("/agents", handleAgents(opts))
	api.GET("/tasks", handleTasks(opts))
	api.GET("/activity", handleActivity(opts))
	api.GET("/costs/:period", handleCosts(opts))
	api.GET("/alerts", handleAlerts(opts))
	api.POST("/sync", handleSync(opts))
}

func handleAgents(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := AgentRows(opts.DB)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"agents": rows})
	}
}

func handleTasks(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := TaskRows(opts.DB, c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": rows})
	}
}

func handleActivity(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := RecentActivity(opts.DB, 50)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"activity": rows})
	}
}

func handleCosts(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := usage.Period(c.Param("period"))
		switch period {
		case usage.PeriodDay, usage.PeriodWeek, usage.PeriodMonth:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "period must be day, week, or month"})
			return
		}
		now := time.Now()
		entries, err := usage.LoadForPeriod(opts.DB, period, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, usage.Summarize(entries, period, now))
	}
}

func handleAlerts(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := RecentAlerts(opts.DB, 20)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"alerts": rows})
	}
}

// handleSync runs a full reconciliation pass on demand. Dry-run budget
// evaluation is available via ?check_budget=1.
func handleSync(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := mirror.Run(c.Request.Context(), opts.DB, opts.Provider)
		if err != nil {
			// Partial sync: the result names which collections failed.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "result": result})
			return
		}
		resp := gin.H{"result": result}
		if c.Query("check_budget") == "1" {
			summaries, err := usage.Summaries(opts.DB, time.Now())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			resp["alerts"] = budget.Evaluate(summaries, opts.Budget)
		}
		c.JSON(http.StatusOK, resp)
	}
}
