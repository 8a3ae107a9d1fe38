package classify

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoClassify(t *testing.T) {
	app := fiber.New()
	SetupClassifyRoutes(app)

	req := httptest.NewRequest("POST", "/api/auto-classify",
		strings.NewReader(`{"imageUrl":"/api/images/t1.png"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed struct {
		Rectangles []map[string]interface{} `json:"rectangles"`
		Auto       bool                     `json:"autoClassified"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))

	assert.True(t, parsed.Auto)
	require.Len(t, parsed.Rectangles, 2)
	assert.Equal(t, float64(50), parsed.Rectangles[0]["x"])
	assert.Equal(t, "2.1", parsed.Rectangles[1]["hierarchy"])
}
