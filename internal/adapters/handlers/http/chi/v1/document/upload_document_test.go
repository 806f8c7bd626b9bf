package document_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	http2 "net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"document-hub/internal/adapters/handlers/http/chi"
	document2 "document-hub/internal/adapters/handlers/http/chi/v1/document"
	"document-hub/internal/core/domain"
	documentservice "document-hub/internal/core/service/document"
	"document-hub/internal/core/service/ingest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadDocumentV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	const maxUploadSize = int64(1 << 20)

	t.Run("success - pdf upload", func(t *testing.T) {
		// Arrange
		summary := domain.DocumentSummary{
			ID:           uuid.New(),
			OriginalName: "report.pdf",
			Status:       domain.DocumentStatusPending,
			CreatedAt:    time.Now().UTC(),
		}

		mockIngest := ingest.NewMockIngestService()
		mockIngest.On("Ingest", mock.Anything, mock.Anything, "report.pdf", "application/pdf", int64(12), "alice").
			Return(&summary, nil)
		mockDocument := documentservice.NewMockDocumentService()

		handler := document2.NewDocumentHandlerV1(mockIngest, mockDocument, maxUploadSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, maxUploadSize, "")
		w := httptest.NewRecorder()

		body, formContentType := multipartBody(t, "file", "report.pdf", "application/pdf", []byte("%PDF-1.4 abc"))
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/documents/", body)
		req.Header.Set("Content-Type", formContentType)
		req.Header.Set("X-User-Id", "alice")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)
		assert.Equal(t, "/api/v1/documents/"+summary.ID.String(), w.Header().Get("Location"))

		var response document2.V1UploadDocumentResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, summary.ID.String(), response.ID)
		assert.Equal(t, "report.pdf", response.FileName)
		assert.Equal(t, "pending", response.Status)

		mockIngest.AssertExpectations(t)
	})

	t.Run("success - missing user header defaults to anonymous", func(t *testing.T) {
		// Arrange
		summary := domain.DocumentSummary{
			ID:           uuid.New(),
			OriginalName: "photo.png",
			Status:       domain.DocumentStatusPending,
			CreatedAt:    time.Now().UTC(),
		}

		mockIngest := ingest.NewMockIngestService()
		mockIngest.On("Ingest", mock.Anything, mock.Anything, "photo.png", "image/png", mock.Anything, "anonymous").
			Return(&summary, nil)
		mockDocument := documentservice.NewMockDocumentService()

		handler := document2.NewDocumentHandlerV1(mockIngest, mockDocument, maxUploadSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, maxUploadSize, "")
		w := httptest.NewRecorder()

		body, formContentType := multipartBody(t, "file", "photo.png", "image/png", []byte("png bytes"))
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/documents/", body)
		req.Header.Set("Content-Type", formContentType)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)
		mockIngest.AssertExpectations(t)
	})

	t.Run("error - no file provided", func(t *testing.T) {
		// Arrange
		mockIngest := ingest.NewMockIngestService()
		mockDocument := documentservice.NewMockDocumentService()
		handler := document2.NewDocumentHandlerV1(mockIngest, mockDocument, maxUploadSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, maxUploadSize, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/documents/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockIngest.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - empty file", func(t *testing.T) {
		// Arrange
		mockIngest := ingest.NewMockIngestService()
		mockDocument := documentservice.NewMockDocumentService()
		handler := document2.NewDocumentHandlerV1(mockIngest, mockDocument, maxUploadSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, maxUploadSize, "")
		w := httptest.NewRecorder()

		body, formContentType := multipartBody(t, "file", "empty.pdf", "application/pdf", nil)
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/documents/", body)
		req.Header.Set("Content-Type", formContentType)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockIngest.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - file too large", func(t *testing.T) {
		// Arrange
		mockIngest := ingest.NewMockIngestService()
		mockDocument := documentservice.NewMockDocumentService()
		handler := document2.NewDocumentHandlerV1(mockIngest, mockDocument, 4, discardLogger)
		h := chi.NewRouter(discardLogger, handler, maxUploadSize, "")
		w := httptest.NewRecorder()

		body, formContentType := multipartBody(t, "file", "big.pdf", "application/pdf", []byte("more than four bytes"))
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/documents/", body)
		req.Header.Set("Content-Type", formContentType)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockIngest.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - disallowed content type", func(t *testing.T) {
		// Arrange
		mockIngest := ingest.NewMockIngestService()
		mockDocument := documentservice.NewMockDocumentService()
		handler := document2.NewDocumentHandlerV1(mockIngest, mockDocument, maxUploadSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, maxUploadSize, "")
		w := httptest.NewRecorder()

		body, formContentType := multipartBody(t, "file", "script.sh", "application/x-sh", []byte("#!/bin/sh"))
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/documents/", body)
		req.Header.Set("Content-Type", formContentType)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockIngest.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - ingestion failure", func(t *testing.T) {
		// Arrange
		mockIngest := ingest.NewMockIngestService()
		mockIngest.On("Ingest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return((*domain.DocumentSummary)(nil), errors.New("nats unavailable"))
		mockDocument := documentservice.NewMockDocumentService()

		handler := document2.NewDocumentHandlerV1(mockIngest, mockDocument, maxUploadSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, maxUploadSize, "")
		w := httptest.NewRecorder()

		body, formContentType := multipartBody(t, "file", "report.pdf", "application/pdf", []byte("%PDF-1.4 abc"))
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/documents/", body)
		req.Header.Set("Content-Type", formContentType)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
		mockIngest.AssertExpectations(t)
	})
}
