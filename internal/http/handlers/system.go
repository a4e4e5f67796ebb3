package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/config"
	"busline/internal/db"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the shared connection, reconnecting it when missing,
// then runs one trivial query against it.
func DBCheck(c *gin.Context) {
	if err := config.EnsureDB(deps.Env); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database ping failed: " + err.Error()})
		return
	}
	var count int
	if err := config.DB.QueryRow("SELECT COUNT(*) FROM routes").Scan(&count); err != nil {
		msg := "database query failed: " + err.Error()
		if db.IsBadConn(err) {
			msg = "database connection lost"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "routes_in_db": count})
}
