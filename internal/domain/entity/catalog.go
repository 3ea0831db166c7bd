package entity

import "time"

// Proyecciones de solo lectura de las entidades del backend. La consola no deriva
// ni cachea cálculos de stock: muestra lo que el backend devuelve.

// Warehouse bodega.
type Warehouse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// Product producto del catálogo.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
}

// StockSnapshot existencias de un producto en una bodega.
type StockSnapshot struct {
	ID         int64      `json:"id"`
	Count      int        `json:"count"`
	LastUpdate string     `json:"lastUpdate,omitempty"`
	Warehouse  *Warehouse `json:"warehouse,omitempty"`
	Product    *Product   `json:"product,omitempty"`
}

// User usuario de la consola tal como lo expone el backend.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// ShipmentItem línea registrada de una operación.
type ShipmentItem struct {
	ID        int64    `json:"id,omitempty"`
	Count     int      `json:"count"`
	ProductID int64    `json:"productId"`
	Product   *Product `json:"product,omitempty"`
}

// Shipment operación registrada (entrada, baja, salida o traslado).
type Shipment struct {
	ID              int64          `json:"id"`
	TransactionType string         `json:"transactionType"`
	Date            string         `json:"date,omitempty"`
	Warehouse       *Warehouse     `json:"warehouse,omitempty"`
	User            *User          `json:"user,omitempty"`
	Items           []ShipmentItem `json:"items,omitempty"`
}

// Page sobre paginado {content: [...]} del backend.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements,omitempty"`
	TotalPages    int `json:"totalPages,omitempty"`
	Number        int `json:"number,omitempty"`
	Size          int `json:"size,omitempty"`
}

// LastUpdateTime interpreta LastUpdate (ISO local, sin zona) si es posible.
func (s StockSnapshot) LastUpdateTime() (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s.LastUpdate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
