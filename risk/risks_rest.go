package risk

import (
	"net/http"

	"opsconsole/bizerror"
	"opsconsole/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var PathRisks = "/v1/risks"

func RegisterRisksRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathRisks, middleWares...)
	g.GET("", handleQueryRisks)
	g.POST("", handleCreateRisk)
	g.PATCH("/:id", handleUpdateRisk)
}

func handleQueryRisks(c *gin.Context) {
	c.JSON(http.StatusOK, QueryRisksFunc())
}

func handleCreateRisk(c *gin.Context) {
	creation := RiskCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := CreateRiskFunc(creation, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleUpdateRisk(c *gin.Context) {
	update := RiskUpdate{}
	if err := c.ShouldBindBodyWith(&update, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := UpdateRiskFunc(c.Param("id"), update, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}
