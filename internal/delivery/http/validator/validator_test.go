package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Kind  string `json:"kind,omitempty" validate:"oneof=percent fixed"`
	Value int64  `json:"value" validate:"gte=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     sample
		wantField string
		wantMsg   string
	}{
		{name: "valid", input: sample{Name: "a", Kind: "fixed", Value: 1}},
		{name: "first failure wins", input: sample{Value: -1}, wantField: "name", wantMsg: "name مطلوب"},
		{name: "oneof uses json name", input: sample{Name: "a", Kind: "other"}, wantField: "kind", wantMsg: "kind يجب أن يكون أحد: percent fixed"},
		{name: "range", input: sample{Name: "a", Kind: "percent", Value: -5}, wantField: "value", wantMsg: "value خارج النطاق المسموح"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			var verr *domainerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, "VALIDATION_FAILED", verr.Code)
			assert.Equal(t, tt.wantMsg, verr.Msg)
		})
	}
}

func TestValidateRejectsNonStruct(t *testing.T) {
	assert.Error(t, New().Validate(map[string]string{"a": "b"}))
}
