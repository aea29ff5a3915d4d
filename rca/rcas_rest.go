package rca

import (
	"net/http"

	"opsconsole/bizerror"
	"opsconsole/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var PathRcas = "/v1/rcas"

func RegisterRcasRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathRcas, middleWares...)
	g.GET("", handleQueryRcas)
	g.POST("", handleCreateRca)
	g.PATCH("/:id", handleUpdateRca)
}

func handleQueryRcas(c *gin.Context) {
	c.JSON(http.StatusOK, QueryRcasFunc())
}

func handleCreateRca(c *gin.Context) {
	creation := RcaCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := CreateRcaFunc(creation, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleUpdateRca(c *gin.Context) {
	update := RcaUpdate{}
	if err := c.ShouldBindBodyWith(&update, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := UpdateRcaFunc(c.Param("id"), update, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}
