package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-console/internal/domain"
)

type messageErr struct{ msg string }

func (e *messageErr) Error() string       { return "backend: " + e.msg }
func (e *messageErr) UserMessage() string { return e.msg }

func TestUserMessage(t *testing.T) {
	const fallback = "ocurrió un error"

	assert.Equal(t, "", domain.UserMessage(nil, fallback))
	assert.Equal(t, fallback, domain.UserMessage(errors.New("dial tcp: refused"), fallback))
	assert.Equal(t, "Недостаточно товара", domain.UserMessage(&messageErr{msg: "Недостаточно товара"}, fallback))
	assert.Equal(t, "sin stock", domain.UserMessage(fmt.Errorf("enviar: %w", &messageErr{msg: "sin stock"}), fallback))
	assert.Equal(t, fallback, domain.UserMessage(&messageErr{}, fallback), "mensaje vacío usa el genérico")
}
