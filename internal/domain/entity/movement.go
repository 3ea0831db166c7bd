package entity

import "strings"

// MovementKind tipo de movimiento que la consola puede componer.
type MovementKind string

// Tipos de movimiento. Outgoing solo aparece en listados (lo genera el backend).
const (
	MovementIncoming MovementKind = "incoming"
	MovementWriteOff MovementKind = "write-off"
	MovementTransfer MovementKind = "transfer"
	MovementOutgoing MovementKind = "outgoing"
)

// ParseMovementKind acepta solo los tipos que se pueden componer desde la consola.
func ParseMovementKind(raw string) (MovementKind, bool) {
	switch k := MovementKind(strings.ToLower(strings.TrimSpace(raw))); k {
	case MovementIncoming, MovementWriteOff, MovementTransfer:
		return k, true
	}
	return "", false
}

// MovementLine línea de un movimiento en edición: producto y cantidad (>= 1).
type MovementLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
