package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pathParam 取前缀之后的单段路径参数；多段或为空时返回 false
func pathParam(path, prefix string) (string, bool) {
	v := strings.TrimPrefix(path, prefix)
	if v == "" || v == path || strings.Contains(v, "/") {
		return "", false
	}
	return v, true
}
