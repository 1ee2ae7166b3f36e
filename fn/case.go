package fn

// Rule pairs a predicate with the function to run when it matches.
type Rule[A, B any] struct {
	when func(A) bool
	then func(A) B
}

// When builds a Rule that fires then(a) if pred(a) holds.
func When[A, B any](pred func(A) bool, then func(A) B) Rule[A, B] {
	return Rule[A, B]{when: pred, then: then}
}

// Otherwise builds a Rule that always matches. It belongs last in a Case.
func Otherwise[A, B any](then func(A) B) Rule[A, B] {
	return Rule[A, B]{when: Const[A](true), then: then}
}

// Case returns a function that tries each rule in order and applies the first
// one whose predicate accepts the argument. The boolean result is false, and
// the value the zero value, when no rule matched.
func Case[A, B any](rules ...Rule[A, B]) func(A) (B, bool) {
	return func(a A) (B, bool) {
		for _, rule := range rules {
			if rule.when(a) {
				return rule.then(a), true
			}
		}

		var zero B
		return zero, false
	}
}
