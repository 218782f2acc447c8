//go:build !integration
// +build !integration

package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type BreakerUnitSuite struct {
	suite.Suite
}

func newTestBreaker() *Breaker {
	return New(Settings{
		Name:             "test",
		FailureThreshold: 3,
		SuccessThreshold: 2,
		ResetTimeout:     50 * time.Millisecond,
	})
}

func failingOp() (any, error) {
	return nil, errors.New("upstream down")
}

func succeedingOp() (any, error) {
	return "ok", nil
}

func trip(b *Breaker, failures int) {
	for i := 0; i < failures; i++ {
		b.Execute(failingOp) //nolint:errcheck
	}
}

func (s *BreakerUnitSuite) TestOpensAfterConsecutiveFailures(t provider.T) {
	t.Parallel()

	b := newTestBreaker()
	assert.Equal(t, "closed", b.State())

	trip(b, 3)
	assert.Equal(t, "open", b.State())

	// The wrapped operation must not run while open.
	invoked := false
	_, err := b.Execute(func() (any, error) {
		invoked = true
		return nil, nil
	})

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, invoked)
}

func (s *BreakerUnitSuite) TestClosesAfterProbeSuccesses(t provider.T) {
	t.Parallel()

	b := newTestBreaker()
	trip(b, 3)
	assert.Equal(t, "open", b.State())

	time.Sleep(60 * time.Millisecond)

	// Two probe successes are required to close again.
	v, err := b.Execute(succeedingOp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, "half-open", b.State())

	_, err = b.Execute(succeedingOp)
	assert.NoError(t, err)
	assert.Equal(t, "closed", b.State())
}

func (s *BreakerUnitSuite) TestReopensOnProbeFailure(t provider.T) {
	t.Parallel()

	b := newTestBreaker()
	trip(b, 3)

	time.Sleep(60 * time.Millisecond)

	_, err := b.Execute(failingOp)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, "open", b.State())
}

func (s *BreakerUnitSuite) TestFailureCountResetsOnSuccess(t provider.T) {
	t.Parallel()

	b := newTestBreaker()

	// Non-consecutive failures never accumulate to the threshold.
	trip(b, 2)
	_, err := b.Execute(succeedingOp)
	assert.NoError(t, err)
	trip(b, 2)

	assert.Equal(t, "closed", b.State())
}

func (s *BreakerUnitSuite) TestOperationErrorsPassThrough(t provider.T) {
	t.Parallel()

	b := newTestBreaker()

	opErr := errors.New("bad response")
	_, err := b.Execute(func() (any, error) { return nil, opErr })

	assert.ErrorIs(t, err, opErr)
	assert.NotErrorIs(t, err, ErrCircuitOpen)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(BreakerUnitSuite))
}
