package submit

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/essa0044/ImageCategorizer/app/assets"
)

func newTestApp(t *testing.T, examID int) (*fiber.App, *fakeStore, *assets.Store) {
	t.Helper()
	store, err := assets.NewStore(t.TempDir())
	require.NoError(t, err)
	fs := &fakeStore{tx: &fakeTx{examID: examID}}
	co := &Coordinator{Store: fs, Assets: store}

	app := fiber.New()
	app.Post("/api/submit", func(c *fiber.Ctx) error { return SubmitClassification(c, co) })
	return app, fs, store
}

func postJSON(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestSubmitClassificationHandler(t *testing.T) {
	t.Run("missing imageUrl", func(t *testing.T) {
		app, fs, _ := newTestApp(t, 1)
		status, body := postJSON(t, app, `{"rectangles":[]}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, body["error"], "Missing image identifier")
		assert.False(t, fs.begun)
	})

	t.Run("missing rectangles", func(t *testing.T) {
		app, _, _ := newTestApp(t, 1)
		status, _ := postJSON(t, app, `{"imageUrl":"/api/images/t1.png"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("unknown temp asset", func(t *testing.T) {
		app, fs, _ := newTestApp(t, 1)
		status, body := postJSON(t, app,
			`{"imageUrl":"/api/images/gone.png","originalFilename":"a.pdf","rectangles":[]}`)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.NotEmpty(t, body["error"])
		assert.False(t, fs.begun, "no exam row may be created for a missing asset")
	})

	t.Run("successful submission", func(t *testing.T) {
		app, fs, store := newTestApp(t, 11)
		writeTempPNG(t, store, "t1.png", 800, 600)

		status, body := postJSON(t, app, `{
			"imageUrl": "/api/images/t1.png",
			"originalFilename": "exam.pdf",
			"rectangles": [
				{"x": 50, "y": 50, "width": 100, "height": 80, "categoryId": 1, "hierarchy": "1"},
				{"x": -10, "y": -10, "width": 5, "height": 5}
			]
		}`)
		require.Equal(t, fiber.StatusOK, status)

		assert.Equal(t, float64(11), body["examId"])
		assert.Equal(t, "/api/images/11/image.png", body["finalImageUrl"])
		assert.Equal(t, float64(1), body["processedCount"])
		assert.NotEmpty(t, body["message"])
		assert.True(t, fs.tx.committed)
	})
}
