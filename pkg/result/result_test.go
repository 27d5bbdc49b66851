package result_test

import (
	"testing"

	"candidate-search-backend/pkg/result"

	"github.com/stretchr/testify/assert"
)

func TestResultAccessors(t *testing.T) {
	t.Run("success exposes value and panics on Error", func(t *testing.T) {
		res := result.Success(42)
		assert.True(t, res.IsSuccess())
		assert.False(t, res.IsFailure())
		assert.Equal(t, 42, res.Value())
		assert.Panics(t, func() { _ = res.Error() })
	})

	t.Run("failure exposes message and panics on Value", func(t *testing.T) {
		res := result.Failure[int]("not found")
		assert.True(t, res.IsFailure())
		assert.Equal(t, "not found", res.Error())
		assert.Panics(t, func() { _ = res.Value() })
	})
}

func TestResultMatch(t *testing.T) {
	var got string

	result.Success("hello").Match(
		func(v string) { got = v },
		func(e string) { t.Fatal("onFailure called for a success") },
	)
	assert.Equal(t, "hello", got)

	result.Failure[string]("boom").Match(
		func(v string) { t.Fatal("onSuccess called for a failure") },
		func(e string) { got = e },
	)
	assert.Equal(t, "boom", got)
}

func TestEmptyResult(t *testing.T) {
	assert.True(t, result.Ok().IsSuccess())

	res := result.Fail("cancelled")
	assert.True(t, res.IsFailure())
	assert.Equal(t, "cancelled", res.Error())
}
