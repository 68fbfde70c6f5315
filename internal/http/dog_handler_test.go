package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"paw-match/internal/service"
)

func newDogTestRouter(dogs *mockDogRepo, scale int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewDogHandler(zap.NewNop(), dogs, service.NewTraitEmbedder(scale))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ownerClaimsKey, service.Claims{OwnerID: "o1"})
		c.Next()
	})
	r.POST("/dogs", handler.CreateDog)
	return r
}

func dogRequestBody(sociability int) []byte {
	body, _ := json.Marshal(map[string]any{
		"name":              "rex",
		"age":               3,
		"weight":            20,
		"sex":               "male",
		"dog_sociability":   sociability,
		"human_sociability": 3,
		"temperament":       3,
		"state":             "IL",
	})
	return body
}

func TestDogHandlerCreateDog_AcceptsTraitsWithinScale(t *testing.T) {
	dogs := newMockDogRepo()
	router := newDogTestRouter(dogs, 5)

	req := httptest.NewRequest(http.MethodPost, "/dogs", bytes.NewReader(dogRequestBody(5)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(dogs.dogs) != 1 {
		t.Fatalf("expected dog persisted, got %d", len(dogs.dogs))
	}
}

func TestDogHandlerCreateDog_RejectsTraitsAboveScale(t *testing.T) {
	dogs := newMockDogRepo()
	router := newDogTestRouter(dogs, 5)

	// Una sociabilidad de 10 sobre escala 5 normalizaría fuera de [0,1].
	req := httptest.NewRequest(http.MethodPost, "/dogs", bytes.NewReader(dogRequestBody(10)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(dogs.dogs) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(dogs.dogs))
	}
}

func TestDogHandlerCreateDog_ScaleFollowsEmbedder(t *testing.T) {
	dogs := newMockDogRepo()
	router := newDogTestRouter(dogs, 10)

	req := httptest.NewRequest(http.MethodPost, "/dogs", bytes.NewReader(dogRequestBody(10)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on a 1-10 scale, got %d: %s", rec.Code, rec.Body.String())
	}
}
