package syntax

// InfixBindingPower returns the (left, right) binding power of a binary
// operator token, or ok=false when the token is not a binary operator.
// Left associativity is right > left; assignment is the one
// right-associative tier. `++` shares the additive tier.
func InfixBindingPower(k Kind) (left, right uint8, ok bool) {
	switch k {
	case EQ, PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ, PERCENT_EQ,
		SHL_EQ, SHR_EQ, AMP_EQ, PIPE_EQ, CARET_EQ:
		return 4, 3, true
	case PIPE_PIPE:
		return 7, 8, true
	case AMP_AMP:
		return 9, 10, true
	case EQ_EQ, NEQ, LT, LT_EQ, GT, GT_EQ:
		return 11, 11, true
	case PIPE:
		return 13, 14, true
	case CARET:
		return 15, 16, true
	case AMP:
		return 17, 18, true
	case SHL, SHR:
		return 19, 20, true
	case PLUS, MINUS, DOUBLE_PLUS:
		return 21, 22, true
	case STAR, SLASH, PERCENT:
		return 23, 24, true
	}
	return 0, 0, false
}

// IsAssignOp reports whether the token is `=` or a compound assignment.
func IsAssignOp(k Kind) bool {
	switch k {
	case EQ, PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ, PERCENT_EQ,
		SHL_EQ, SHR_EQ, AMP_EQ, PIPE_EQ, CARET_EQ:
		return true
	}
	return false
}
