package http

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s4daharu/novel-apps-sub001/internal/entities"
	"github.com/s4daharu/novel-apps-sub001/internal/services"
)

func setupConvertRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller := NewBackupConvertController(services.NewConversionService(), nil, 10*1024*1024)

	router := gin.New()
	router.POST("/api/backup/from-zip", controller.Convert)
	return router
}

func buildChapterZip(t *testing.T, entries map[string]string, order []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range order {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(entries[name]))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func convertRequest(t *testing.T, archive []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if archive != nil {
		part, err := writer.CreateFormFile("zip_file", "chapters.zip")
		require.NoError(t, err)
		_, err = part.Write(archive)
		require.NoError(t, err)
	}

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", "/api/backup/from-zip", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestBackupConvertController_Convert(t *testing.T) {
	t.Run("converts an uploaded archive", func(t *testing.T) {
		router := setupConvertRouter(t)

		archive := buildChapterZip(t, map[string]string{
			"b.txt": "Hello world.",
			"a.txt": "Bye.",
		}, []string{"b.txt", "a.txt"})

		req := convertRequest(t, archive, map[string]string{
			"title":           "My Book: Part 1!",
			"chapter_pattern": "Chapter ",
			"start_number":    "1",
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="My_Book_Part_1.json"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "2", w.Header().Get("X-Chapter-Count"))
		assert.Equal(t, "3", w.Header().Get("X-Word-Count"))

		var doc entities.Backup
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		require.Len(t, doc.Revisions, 1)
		require.Len(t, doc.Revisions[0].Scenes, 2)
		assert.Equal(t, "Chapter 1", doc.Revisions[0].Scenes[0].Title)
		assert.Contains(t, doc.Revisions[0].Scenes[0].Text, "Bye.")
	})

	t.Run("rejects a request without an archive", func(t *testing.T) {
		router := setupConvertRouter(t)

		req := convertRequest(t, nil, map[string]string{"title": "My Book"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Error, "archive not provided")
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		router := setupConvertRouter(t)

		archive := buildChapterZip(t, map[string]string{"a.txt": "x"}, []string{"a.txt"})
		req := convertRequest(t, archive, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects invalid numeric fields", func(t *testing.T) {
		router := setupConvertRouter(t)

		archive := buildChapterZip(t, map[string]string{"a.txt": "x"}, []string{"a.txt"})
		req := convertRequest(t, archive, map[string]string{
			"title":        "My Book",
			"start_number": "zero",
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a start number below one", func(t *testing.T) {
		router := setupConvertRouter(t)

		archive := buildChapterZip(t, map[string]string{"a.txt": "x"}, []string{"a.txt"})
		req := convertRequest(t, archive, map[string]string{
			"title":        "My Book",
			"start_number": "0",
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("surfaces no-chapters errors as bad requests", func(t *testing.T) {
		router := setupConvertRouter(t)

		archive := buildChapterZip(t, nil, nil)
		req := convertRequest(t, archive, map[string]string{"title": "My Book"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Error, "no chapters")
	})

	t.Run("surfaces corrupt archives as bad requests", func(t *testing.T) {
		router := setupConvertRouter(t)

		req := convertRequest(t, []byte("not a zip"), map[string]string{"title": "My Book"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Error, "archive")
	})
}
