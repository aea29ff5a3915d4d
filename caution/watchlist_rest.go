package caution

import (
	"net/http"

	"opsconsole/bizerror"
	"opsconsole/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var PathCautionClients = "/v1/caution-clients"

func RegisterCautionRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathCautionClients, middleWares...)
	g.GET("", handleQueryClients)
	g.POST("", handleAddClient)
	g.PUT("/:id", handleUpdateClient)
	g.DELETE("/:id", handleRemoveClient)
}

func handleQueryClients(c *gin.Context) {
	c.JSON(http.StatusOK, QueryClientsFunc())
}

func handleAddClient(c *gin.Context) {
	creation := IcClientCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := AddClientFunc(creation, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleUpdateClient(c *gin.Context) {
	creation := IcClientCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := UpdateClientFunc(c.Param("id"), creation, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleRemoveClient(c *gin.Context) {
	if err := RemoveClientFunc(c.Param("id"), session.FindIdentity(c)); err != nil {
		panic(err)
	}
	c.Status(http.StatusNoContent)
}
