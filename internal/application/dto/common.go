package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// PageRequest paginación de listados (page empieza en 0, como el backend).
type PageRequest struct {
	Page int `query:"page" json:"page"`
	Size int `query:"size" json:"size"`
}

// DefaultPage aplica valores por defecto y límites.
func (p *PageRequest) DefaultPage() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 100
	}
	if p.Size > 500 {
		p.Size = 500
	}
}

// ErrorResponse cuerpo de error HTTP de la consola.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// WireID identificador tal como lo escribe la consola. El backend usa ids numéricos (Long):
// si el valor es un entero se serializa como número JSON, si no como string.
type WireID string

// MarshalJSON implementa json.Marshaler.
func (id WireID) MarshalJSON() ([]byte, error) {
	s := strings.TrimSpace(string(id))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(s)
}

// UnmarshalJSON acepta número o string.
func (id *WireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = WireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = WireID(n.String())
	return nil
}
