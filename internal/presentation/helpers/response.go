package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/anuntech/expense-backend/internal/presentation/protocols"
)

// CreateResponse encodes body as JSON. A nil body, or a 204, produces an empty response.
func CreateResponse(body any, statusCode int) *protocols.HttpResponse {
	header := http.Header{}
	if body == nil || statusCode == http.StatusNoContent {
		return &protocols.HttpResponse{Header: header, StatusCode: statusCode}
	}

	data, err := json.Marshal(body)
	if err != nil {
		data, _ = json.Marshal(&protocols.ErrorResponse{Error: "failed to encode response"})
		statusCode = http.StatusInternalServerError
	}

	header.Set("Content-Type", "application/json")
	return &protocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     header,
		StatusCode: statusCode,
	}
}

// CreateErrorResponse is shorthand for a JSON {"error": message} body.
func CreateErrorResponse(message string, statusCode int) *protocols.HttpResponse {
	return CreateResponse(&protocols.ErrorResponse{Error: message}, statusCode)
}

// CreateFileResponse sends payload as a download named fileName.
func CreateFileResponse(payload []byte, contentType, fileName string) *protocols.HttpResponse {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	header.Set("Content-Length", fmt.Sprint(len(payload)))

	return &protocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(payload)),
		Header:     header,
		StatusCode: http.StatusOK,
	}
}
