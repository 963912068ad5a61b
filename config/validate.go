package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/stepper"
	"github.com/katalvlaran/stepviz/wire"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their TOML key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		return f.Interface().(Duration).Duration
	}, Duration{})

	_ = v.RegisterValidation("algorithm", validateAlgorithm)
	_ = v.RegisterValidation("codec", validateCodec)
	_ = v.RegisterValidation("topology", validateTopology)

	return v
}

func validateAlgorithm(fl validator.FieldLevel) bool {
	_, err := stepper.ParseAlgorithm(fl.Field().String())
	return err == nil
}

func validateCodec(fl validator.FieldLevel) bool {
	_, err := wire.ByName(fl.Field().String())
	return err == nil
}

func validateTopology(fl validator.FieldLevel) bool {
	_, err := builder.Named(builder.TopologySpec{Name: fl.Field().String()})
	return err == nil
}

// Validate checks every section. The error wraps ErrInvalid and names each
// failing key by its dotted TOML path.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, len(ves))
	for i, fe := range ves {
		msgs[i] = fmt.Sprintf("%s: %s", keyPath(fe.Namespace()), message(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// keyPath drops the root struct name ("Config.graph.nodes" => "graph.nodes").
func keyPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// fieldKey maps a PlaybackConfig field name to its TOML key.
func fieldKey(name string) string {
	if f, ok := reflect.TypeOf(PlaybackConfig{}).FieldByName(name); ok {
		return strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
	}
	return name
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("minimum value is %s", fe.Param())
	case "lte":
		return fmt.Sprintf("maximum value is %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("may not be less than %s", fieldKey(fe.Param()))
	case "hostname_port":
		return "must be host:port"
	case "algorithm":
		return "must be one of bfs, dfs, dijkstra, prim, kruskal"
	case "codec":
		return fmt.Sprintf("must be one of %s", strings.Join(wire.Names(), ", "))
	case "topology":
		return fmt.Sprintf("must be one of %s", strings.Join(builder.Topologies(), ", "))
	default:
		return fmt.Sprintf("validation failed: %s", fe.Tag())
	}
}
