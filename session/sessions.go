package session

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const TokenExpiration = 24 * time.Hour

var TokenCache = cache.New(TokenExpiration, 1*time.Minute)

const KeySecToken = "sec_token"

type Identity struct {
	Name string `json:"name"`
}

type Session struct {
	Token    string   `json:"-"`
	Identity Identity `json:"identity"`
}

// AnonymousIdentity attributes actions of callers without a session; the
// console is single-user and attribution, not authentication, is the point.
var AnonymousIdentity = Identity{Name: "You"}

// FindIdentity resolves the caller's identity from the session cookie,
// falling back to the anonymous identity.
func FindIdentity(ctx *gin.Context) Identity {
	token, err := ctx.Cookie(KeySecToken)
	if err != nil {
		return AnonymousIdentity
	}
	value, found := TokenCache.Get(token)
	if !found {
		return AnonymousIdentity
	}
	s, ok := value.(*Session)
	if !ok || s.Token == "" {
		return AnonymousIdentity
	}
	return s.Identity
}
