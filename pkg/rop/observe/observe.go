package observe

import (
	"go.uber.org/zap"

	"github.com/ib-77/rop-simplified/pkg/rop"
	"github.com/ib-77/rop-simplified/pkg/rop/void"
)

// Tap logs the state of results as they pass through a chain.
type Tap struct {
	logger *zap.Logger
}

// New returns a Tap writing to logger. A nil logger gives a no-op Tap.
func New(logger *zap.Logger) *Tap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tap{logger: logger.Named("rop")}
}

// Step logs o under the given step name: debug on success, warn on failure.
func (t *Tap) Step(step string, o rop.Outcome) {
	if rop.IsNil(o) {
		t.logger.Warn("no result", zap.String("step", step))
		return
	}

	fields := []zap.Field{
		zap.String("step", step),
		zap.Stringer("id", o.Id()),
	}

	if o.IsSuccess() {
		t.logger.Debug("step succeeded", fields...)
		return
	}
	t.logger.Warn("step failed", append(fields, zap.String("description", o.ErrorDescription()))...)
}

// Result logs r and returns it unchanged.
func Result[T any](t *Tap, step string, r rop.Result[T]) rop.Result[T] {
	t.Step(step, r)
	return r
}

// Void logs r and returns it unchanged.
func Void(t *Tap, step string, r void.Result) void.Result {
	t.Step(step, r)
	return r
}
