// controllers/stats.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salonbook/stats"
	"salonbook/store"
)

// StatsController serves the statistics screen.
type StatsController struct {
	Store *store.Store
}

// trailing window shown on the charts
const statsMonths = 6

// GetStats returns the headline summary, the trailing monthly series
// (oldest first, for the charts) and the same series newest first (for
// the detail list).
func (sc *StatsController) GetStats(c *gin.Context) {
	appointments := sc.Store.Appointments()
	monthly := stats.Monthly(appointments, time.Now(), statsMonths)

	c.JSON(http.StatusOK, gin.H{
		"summary": stats.Summarize(appointments),
		"monthly": monthly,
		"details": stats.Reversed(monthly),
	})
}
