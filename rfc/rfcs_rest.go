package rfc

import (
	"net/http"

	"opsconsole/bizerror"
	"opsconsole/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var PathRfcs = "/v1/rfcs"

type ReviewRequest struct {
	Note     string `json:"note"`
	Rejected bool   `json:"rejected"`
}

type StatusChange struct {
	Status RfcStatus `json:"status" binding:"required"`
}

func RegisterRfcsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathRfcs, middleWares...)
	g.GET("", handleQueryRfcs)
	g.POST("", handleCreateRfc)
	g.POST("/:id/approvals", handleReviewRfc)
	g.PATCH("/:id/status", handleSetRfcStatus)
}

func handleQueryRfcs(c *gin.Context) {
	c.JSON(http.StatusOK, QueryRfcsFunc())
}

func handleCreateRfc(c *gin.Context) {
	creation := RfcCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := CreateRfcFunc(creation, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleReviewRfc(c *gin.Context) {
	request := ReviewRequest{}
	if err := c.ShouldBindBodyWith(&request, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	var record *RfcItem
	var err error
	if request.Rejected {
		record, err = RejectRfcFunc(c.Param("id"), request.Note, session.FindIdentity(c))
	} else {
		record, err = ApproveRfcFunc(c.Param("id"), request.Note, session.FindIdentity(c))
	}
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleSetRfcStatus(c *gin.Context) {
	change := StatusChange{}
	if err := c.ShouldBindBodyWith(&change, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := SetRfcStatusFunc(c.Param("id"), change.Status, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}
