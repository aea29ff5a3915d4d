package event

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var PathEvents = "/v1/events"

func RegisterEventsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathEvents, middleWares...)
	g.GET("", handleQueryEvents)
}

func handleQueryEvents(c *gin.Context) {
	records := QueryEventsFunc(c.Query("source"))
	c.JSON(http.StatusOK, records)
}
