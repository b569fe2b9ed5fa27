// Package observe logs results with zap without altering them, so a Tap can be
// dropped between combinator calls while debugging a pipeline.
package observe
