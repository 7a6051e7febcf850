package state

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoEvaluator indicates no rule evaluator could be resolved.
var ErrNoEvaluator = errors.New("state: evaluator not configured")

// RuleContext carries inputs needed when evaluating an expression. Snapshot
// holds the bindings exposed to the expression, usually produced by
// SnapshotOf; Holder labels the originating container for logs and errors.
type RuleContext struct {
	Snapshot any
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
	Holder   string
}

func (ctx RuleContext) withDefaultNow() RuleContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx RuleContext) withDefaultMaps() RuleContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx RuleContext) withDefaults() RuleContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

func (ctx RuleContext) holderLabel() string {
	if ctx.Holder != "" {
		return ctx.Holder
	}
	return "unknown"
}

// Evaluator executes expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// Response stores a typed result produced by an evaluator.
type Response[T any] struct {
	Value T
}

// Option configures a Rules engine.
type Option func(*rulesConfig)

type rulesConfig struct {
	evaluator    Evaluator
	programCache ProgramCache
	functions    *FunctionRegistry
	logger       EvaluatorLogger
}

func applyOptions(opts []Option) rulesConfig {
	cfg := rulesConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithEvaluator configures the evaluator used by a Rules engine.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *rulesConfig) {
		cfg.evaluator = e
	}
}

// SnapshotOf resolves a container into expression bindings: "tags" holds the
// effective tag map and every state child contributes its resolved value
// under its key identifier. Values are deep-cloned so rules cannot mutate
// stored state. Nested containers contribute nothing; rules address one
// scope at a time.
func SnapshotOf(c *Container) map[string]any {
	snapshot := map[string]any{}
	if c == nil {
		return snapshot
	}
	tags := map[string]any{}
	for label, value := range c.Tags() {
		tags[label] = value
	}
	snapshot["tags"] = tags
	for _, item := range c.items {
		st, ok := item.(stateItem)
		if !ok {
			continue
		}
		snapshot[st.keyInfo().ID] = cloneAny(st.resolvedAny())
	}
	return snapshot
}

// Rules evaluates expressions against container snapshots. The zero
// configuration falls back to the expr engine.
type Rules struct {
	cfg rulesConfig
}

// NewRules builds a rule engine from the supplied options.
func NewRules(opts ...Option) *Rules {
	return &Rules{cfg: applyOptions(opts)}
}

// Evaluate executes expr against a snapshot of c and wraps the result.
func (r *Rules) Evaluate(c *Container, expr string) (Response[any], error) {
	ctx := RuleContext{Snapshot: SnapshotOf(c)}
	return r.EvaluateWith(ctx, expr)
}

// EvaluateWith executes expr using ctx as provided, defaulting the snapshot
// to empty bindings.
func (r *Rules) EvaluateWith(ctx RuleContext, expr string) (Response[any], error) {
	if expr == "" {
		return Response[any]{}, fmt.Errorf("expression must not be empty")
	}
	evaluator, err := r.resolveEvaluator()
	if err != nil {
		return Response[any]{}, err
	}
	if ctx.Snapshot == nil {
		ctx.Snapshot = map[string]any{}
	}
	ctx = ctx.withDefaults()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	evalErr = wrapEvaluationError(engine, expr, ctx.holderLabel(), evalErr)
	r.evaluatorLogger().LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     expr,
		Holder:   ctx.holderLabel(),
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return Response[any]{}, evalErr
	}
	return Response[any]{Value: value}, nil
}

func (r *Rules) resolveEvaluator() (Evaluator, error) {
	if r.cfg.evaluator != nil {
		return r.cfg.evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if cache := r.cfg.programCache; cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := r.cfg.functions; registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	defaultEvaluator := NewExprEvaluator(exprOpts...)
	if defaultEvaluator == nil {
		return nil, ErrNoEvaluator
	}
	r.cfg.evaluator = defaultEvaluator
	return defaultEvaluator, nil
}

func (r *Rules) evaluatorLogger() EvaluatorLogger {
	if r.cfg.logger != nil {
		return r.cfg.logger
	}
	return noopEvaluatorLogger{}
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*state.exprEvaluator":
		return "expr"
	case "*state.celEvaluator":
		return "cel"
	case "*state.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
