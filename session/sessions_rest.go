package session

import (
	"net/http"

	"opsconsole/bizerror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

var PathSessions = "/v1/sessions"

type LoginRequest struct {
	Name string `json:"name" binding:"required,lte=64"`
}

func RegisterSessionsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathSessions, middleWares...)
	g.POST("", handleCreateSession)
	g.DELETE("", handleDeleteSession)
}

func handleCreateSession(c *gin.Context) {
	login := LoginRequest{}
	err := c.ShouldBindBodyWith(&login, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	token := uuid.New().String()
	s := &Session{Token: token, Identity: Identity{Name: login.Name}}
	TokenCache.Set(token, s, TokenExpiration)

	c.SetCookie(KeySecToken, token, int(TokenExpiration.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, s)
}

func handleDeleteSession(c *gin.Context) {
	token, err := c.Cookie(KeySecToken)
	if err == nil {
		TokenCache.Delete(token)
	}
	c.SetCookie(KeySecToken, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
