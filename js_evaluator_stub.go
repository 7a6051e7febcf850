//go:build !js_eval

package state

// NewJSEvaluator returns nil unless the module is built with the js_eval
// tag. The goja runtime is heavy, so it stays opt-in.
func NewJSEvaluator(_ ...JSEvaluatorOption) Evaluator {
	return nil
}

func jsEvaluatorAvailable() bool {
	return false
}
