package state

import (
	"fmt"

	"github.com/goliatone/go-state/internal/hydrate"
)

// ResultAs decodes a map-shaped rule result into a typed struct. Evaluators
// return maps for object-valued expressions; this bridges them back into
// caller types. The holder and expr labels only feed error messages.
func ResultAs[T any](holder, expr string, result any) (T, error) {
	var zero T
	payload, ok := result.(map[string]any)
	if !ok {
		return zero, fmt.Errorf("state: result for holder %q is %T, expected map[string]any", holder, result)
	}
	decoder := hydrate.NewDecoder[T]()
	return decoder.Decode(hydrate.Context{Holder: holder, Expr: expr}, payload)
}

// ResponseAs converts a Response produced by Rules.Evaluate into a typed
// response via ResultAs.
func ResponseAs[T any](holder, expr string, response Response[any]) (Response[T], error) {
	value, err := ResultAs[T](holder, expr, response.Value)
	if err != nil {
		return Response[T]{}, err
	}
	return Response[T]{Value: value}, nil
}
