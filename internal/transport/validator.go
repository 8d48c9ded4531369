package transport

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator plugs go-playground/validator into echo's c.Validate.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return &Validator{v: v}
}

func (cv *Validator) Validate(i any) error {
	return cv.v.Struct(i)
}
