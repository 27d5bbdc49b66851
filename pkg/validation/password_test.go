package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicyCheck(t *testing.T) {
	policy := PasswordPolicy{
		MinLength:        8,
		RequireDigit:     true,
		RequireUppercase: true,
	}

	t.Run("valid password passes", func(t *testing.T) {
		assert.Empty(t, policy.Check("Sturdy99"))
	})

	t.Run("collects every violated rule", func(t *testing.T) {
		problems := policy.Check("short")
		assert.Len(t, problems, 3)
	})

	t.Run("length only", func(t *testing.T) {
		problems := PasswordPolicy{MinLength: 6}.Check("abc")
		assert.Len(t, problems, 1)
		assert.Contains(t, problems[0], "at least 6 characters")
	})

	t.Run("joined message", func(t *testing.T) {
		msg := policy.CheckJoined("lowercaseonly")
		assert.Contains(t, msg, "digit")
		assert.Contains(t, msg, "uppercase")
	})

	t.Run("joined empty on success", func(t *testing.T) {
		assert.Empty(t, policy.CheckJoined("Sturdy99"))
	})
}
