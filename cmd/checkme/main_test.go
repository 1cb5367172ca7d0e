package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmaia/checkme/internal/model"
)

func TestFormatItemLineKeepsPriceWhenDone(t *testing.T) {
	price := 5.50
	item := model.Item{Name: "Leite", Price: &price, Quantity: 2, Done: true}

	line := formatItemLine(item)
	assert.Contains(t, line, "[x] Leite")
	assert.Contains(t, line, "2 x R$ 5,50")
}

func TestFormatItemLineUnpriced(t *testing.T) {
	item := model.Item{Name: "Pão", Quantity: 1}

	line := formatItemLine(item)
	assert.True(t, strings.HasPrefix(line, "[ ] Pão"))
	assert.NotContains(t, line, "R$")
}
