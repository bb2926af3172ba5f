package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/lwmacct/251014-go-pkg-poster/internal/poster"
	"github.com/lwmacct/251014-go-pkg-poster/pkg/record"
)

// RequestIDHeader 请求 ID 响应头。
const RequestIDHeader = "X-Request-Id"

// NewHandler 返回渲染服务的路由。
//
//   - GET  /health                 健康检查
//   - GET  /templates              模板列表
//   - POST /render/{name}          返回展开后的 HTML
//   - POST /render/{name}?save=true 保存产物并返回路径，可用 ?output= 指定文件名
//
// 请求体按 Content-Type 解析为 JSON / YAML / TOML 数据记录。
func NewHandler(gen *poster.Generator, maxBody int64) http.Handler {
	mux := http.NewServeMux()

	// 健康检查端点
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /templates", func(w http.ResponseWriter, r *http.Request) {
		names, err := gen.Store().List()
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err)

			return
		}
		if names == nil {
			names = []string{}
		}
		writeJSON(w, http.StatusOK, map[string][]string{"templates": names})
	})

	mux.HandleFunc("POST /render/{name}", func(w http.ResponseWriter, r *http.Request) {
		save, err := saveParam(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err)

			return
		}

		format, err := record.FormatFromContentType(r.Header.Get("Content-Type"))
		if err != nil {
			writeError(w, r, http.StatusUnsupportedMediaType, err)

			return
		}

		rec, err := record.Decode(http.MaxBytesReader(w, r.Body, maxBody), format)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, r, http.StatusRequestEntityTooLarge, err)

				return
			}
			writeError(w, r, http.StatusBadRequest, err)

			return
		}

		name := r.PathValue("name")
		if !save {
			html, err := gen.Preview(r.Context(), name, rec)
			if err != nil {
				writeError(w, r, statusFor(err), err)

				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(html))

			return
		}

		path, err := gen.Generate(r.Context(), name, rec, r.URL.Query().Get("output"))
		if err != nil {
			writeError(w, r, statusFor(err), err)

			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"path": path})
	})

	return withRequestID(mux)
}

// saveParam 解析 ?save=，缺省为 false，取值遵循 strconv.ParseBool。
func saveParam(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("save")
	if raw == "" {
		return false, nil
	}
	save, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid save parameter %q", raw)
	}

	return save, nil
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		slog.Debug("Request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, poster.ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.Is(err, poster.ErrInvalidName):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	slog.Warn("Request failed",
		"id", w.Header().Get(RequestIDHeader), "path", r.URL.Path, "status", status, "error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
