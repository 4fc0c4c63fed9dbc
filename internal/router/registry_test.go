package router

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubModule struct {
	path       string
	registered bool
}

func (m *stubModule) Register(rg *gin.RouterGroup) {
	m.registered = true
	rg.GET(m.path, func(c *gin.Context) { c.Status(http.StatusOK) })
}

func TestRegistryMountsModulesUnderAPIPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	reg := NewRegistry(engine)
	first := &stubModule{path: "/ping"}
	second := &stubModule{path: "/pong"}
	reg.Add(first, second)
	reg.RegisterAll()

	if !first.registered || !second.registered {
		t.Fatal("RegisterAll skipped a module")
	}

	want := map[string]bool{"/api/ping": false, "/api/pong": false}
	for _, r := range engine.Routes() {
		if r.Method == http.MethodGet {
			if _, tracked := want[r.Path]; tracked {
				want[r.Path] = true
			}
		}
	}
	for path, seen := range want {
		if !seen {
			t.Errorf("GET %s was not mounted", path)
		}
	}
}
