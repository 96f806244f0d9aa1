package handlers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_CustomTags(t *testing.T) {
	type body struct {
		Date  string  `validate:"required,date"`
		Start *string `validate:"omitempty,clock"`
	}

	var v *Validator
	require.NotPanics(t, func() { v = NewValidator() })

	start := "09:30"
	assert.NoError(t, v.Struct(&body{Date: "2025-10-15", Start: &start}))
	assert.NoError(t, v.Struct(&body{Date: "2025-10-15"}))

	err := v.Struct(&body{Date: "15.10.2025"})
	require.Error(t, err)
	assert.Equal(t, "Date", FirstField(err))

	bad := "25:00"
	err = v.Struct(&body{Date: "2025-10-15", Start: &bad})
	require.Error(t, err)
	assert.Equal(t, "Start", FirstField(err))
}

func TestMustRegister_PanicsOnInvalidTag(t *testing.T) {
	v := validator.New()
	ok := func(validator.FieldLevel) bool { return true }

	assert.NotPanics(t, func() { mustRegister(v, "date", ok) })
	assert.Panics(t, func() { mustRegister(v, "", ok) })
}
