package jwt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken se devuelve cuando el token no puede decodificarse a un conjunto de claims.
var ErrMalformedToken = errors.New("jwt: token malformado")

// Claims es el payload que emite el backend de almacenes: sub (username), role e iat/exp.
// Role llega como "ROLE_ADMIN" | "ROLE_STOREKEEPER"; entity.ParseRole lo reconoce.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// segmentParser decodifica segmentos base64 URL-safe con o sin padding.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode extrae el payload (segmento central) del token y lo interpreta como Claims.
// NO verifica la firma: la confianza la establece el backend en cada llamada.
// Nunca hace panic; cualquier entrada inválida devuelve (nil, ErrMalformedToken).
func Decode(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[1] == "" {
		return nil, ErrMalformedToken
	}
	raw, err := segmentParser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrMalformedToken, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: payload no es UTF-8", ErrMalformedToken)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: payload no es un objeto JSON", ErrMalformedToken)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrMalformedToken, err)
	}
	dropOpaqueTimestamps(fields)
	normalized, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrMalformedToken, err)
	}
	var c Claims
	if err := json.Unmarshal(normalized, &c); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrMalformedToken, err)
	}
	return &c, nil
}

// timestampClaims se muestran pero no se validan localmente.
var timestampClaims = []string{"exp", "iat", "nbf"}

// dropOpaqueTimestamps descarta exp/iat/nbf que no sean NumericDate en lugar de rechazar el token.
func dropOpaqueTimestamps(fields map[string]json.RawMessage) {
	for _, name := range timestampClaims {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var d jwt.NumericDate
		if err := json.Unmarshal(raw, &d); err != nil {
			delete(fields, name)
		}
	}
}

// Generate genera un token firmado HS256 con el mismo formato que el backend.
// Se usa en tests y herramientas locales; la consola nunca firma tokens en producción.
func Generate(secret, subject, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
