package panels

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-console/internal/domain/schedule"
)

// ValidationError lists the rejected fields by their JSON names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		// Compare decimals as numbers so gt/gte work on prices.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})

		if err := v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := schedule.ParseClock(fl.Field().String())
			return err == nil
		}); err != nil {
			panic(fmt.Sprintf("panels: register clock validation: %v", err))
		}

		v.RegisterStructValidation(unavailabilityRange, UnavailabilityForm{})

		validate = v
	})
	return validate
}

func unavailabilityRange(sl validator.StructLevel) {
	f := sl.Current().Interface().(UnavailabilityForm)
	start, err1 := schedule.ParseClock(f.StartTime)
	end, err2 := schedule.ParseClock(f.EndTime)
	if err1 != nil || err2 != nil {
		return
	}
	if end <= start {
		sl.ReportError(f.EndTime, "end_time", "EndTime", "after_start", "")
	}
}

// Validate checks a form against its struct tags.
func Validate(form any) error {
	err := validatorInstance().Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "clock":
		return fmt.Sprintf("%s must be a time of day (HH:MM)", field)
	case "after_start":
		return "end_time must be after start_time"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
