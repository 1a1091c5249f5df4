package validation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func contactRules() []Rule {
	return []Rule{
		{Field: "name", Type: KindString, MinLength: 2},
		{Field: "email", Type: KindString, Pattern: emailPattern},
		{Field: "message", Type: KindString, MinLength: 5},
	}
}

func reservationRules() []Rule {
	return []Rule{
		{Field: "customer_name", Type: KindString, MinLength: 2},
		{Field: "phone", Type: KindString, Optional: true},
		{Field: "table_no", Type: KindNumber, Int: true, Min: MinOf(1)},
		{Field: "reserved_at", Type: KindString, MinLength: 10},
		{Field: "notes", Type: KindString, Optional: true},
	}
}

func TestApplyValidPayload(t *testing.T) {
	payload := map[string]interface{}{
		"name":    "Ali",
		"email":   "ali@example.com",
		"message": "Hello there",
	}
	assert.Empty(t, Apply(payload, contactRules()))
}

func TestApplyMissingField(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"absent", map[string]interface{}{"email": "a@b.co", "message": "Hello there"}},
		{"null", map[string]interface{}{"name": nil, "email": "a@b.co", "message": "Hello there"}},
		{"empty string", map[string]interface{}{"name": "", "email": "a@b.co", "message": "Hello there"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := Apply(tt.payload, contactRules())
			assert.Len(t, violations, 1)
			assert.Equal(t, "name", violations[0].Field)
			assert.Equal(t, "name is required", violations[0].Message)
		})
	}
}

func TestApplyTypeMismatch(t *testing.T) {
	payload := map[string]interface{}{
		"name":    float64(42),
		"email":   "a@b.co",
		"message": "Hello there",
	}
	assert.Equal(t, "name must be string", First(Apply(payload, contactRules())))
}

func TestApplyMinLength(t *testing.T) {
	payload := map[string]interface{}{
		"name":    "Ali",
		"email":   "ali@example.com",
		"message": "Hey",
	}
	assert.Equal(t, "message must have at least 5 characters", First(Apply(payload, contactRules())))
}

func TestApplyMaxLength(t *testing.T) {
	rules := []Rule{{Field: "name", Type: KindString, MaxLength: 3}}
	payload := map[string]interface{}{"name": "Alexander"}
	assert.Equal(t, "name must have at most 3 characters", First(Apply(payload, rules)))
}

func TestApplyPattern(t *testing.T) {
	payload := map[string]interface{}{
		"name":    "Ali",
		"email":   "not-an-email",
		"message": "Hello there",
	}
	violations := Apply(payload, contactRules())
	assert.Len(t, violations, 1)
	assert.Equal(t, "email", violations[0].Field)
	assert.Equal(t, "email format is invalid", violations[0].Message)
}

func TestApplyEnum(t *testing.T) {
	rules := []Rule{{Field: "type", Type: KindString, Enum: []string{"Starter", "Main", "Dessert", "Drink"}}}

	assert.Empty(t, Apply(map[string]interface{}{"type": "Main"}, rules))
	assert.Equal(t,
		"type must be one of Starter, Main, Dessert, Drink",
		First(Apply(map[string]interface{}{"type": "Snack"}, rules)))
}

func TestApplyNumberRules(t *testing.T) {
	rules := reservationRules()

	base := func() map[string]interface{} {
		return map[string]interface{}{
			"customer_name": "Sana",
			"table_no":      float64(3),
			"reserved_at":   "2025-01-01T10:00",
		}
	}

	assert.Empty(t, Apply(base(), rules))

	zero := base()
	zero["table_no"] = float64(0)
	assert.Equal(t, "table_no must be >= 1", First(Apply(zero, rules)))

	frac := base()
	frac["table_no"] = 2.5
	assert.Equal(t, "table_no must be an integer", First(Apply(frac, rules)))

	str := base()
	str["table_no"] = "3"
	assert.Equal(t, "table_no must be number", First(Apply(str, rules)))
}

func TestApplyOptionalSkipsChecks(t *testing.T) {
	payload := map[string]interface{}{
		"customer_name": "Sana",
		"table_no":      float64(2),
		"reserved_at":   "2025-01-01T10:00",
		// phone and notes absent
	}
	assert.Empty(t, Apply(payload, reservationRules()))

	withPhone := map[string]interface{}{
		"customer_name": "Sana",
		"phone":         float64(123),
		"table_no":      float64(2),
		"reserved_at":   "2025-01-01T10:00",
	}
	assert.Equal(t, "phone must be string", First(Apply(withPhone, reservationRules())))
}

func TestApplyReportsFieldsInDeclarationOrder(t *testing.T) {
	violations := Apply(map[string]interface{}{}, contactRules())
	assert.Len(t, violations, 3)
	assert.Equal(t, "name", violations[0].Field)
	assert.Equal(t, "email", violations[1].Field)
	assert.Equal(t, "message", violations[2].Field)
}

func TestApplyOneViolationPerField(t *testing.T) {
	// A short non-matching string trips both minLength and pattern; only the
	// first check for the field must report.
	rules := []Rule{{Field: "email", Type: KindString, MinLength: 5, Pattern: emailPattern}}
	violations := Apply(map[string]interface{}{"email": "x"}, rules)
	assert.Len(t, violations, 1)
	assert.Equal(t, "email must have at least 5 characters", violations[0].Message)
}
